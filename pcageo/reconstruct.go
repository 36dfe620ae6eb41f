// SPDX-License-Identifier: MIT

package pcageo

import (
	"fmt"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
	"github.com/rerapony/Nuke-KeenTools-sub003/pca"
)

// writeMean clears out and appends object 0 with template's topology and the
// mean points.
func writeMean(out host.GeometryList, template host.Object, mean []float64) error {
	out.Clear()

	return addObject(out, template, mean)
}

// writeExtreme appends object j (1-based) holding μ + √λⱼ·vⱼ.
func writeExtreme(out host.GeometryList, template host.Object, m *pca.Model, j int) error {
	v, err := m.Extreme(j-1, 1)
	if err != nil {
		return err
	}

	return addObject(out, template, v)
}

func addObject(out host.GeometryList, template host.Object, v []float64) error {
	obj, err := out.AddFrom(template)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	if err = obj.SetPoints(toPoints(v)); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}

	return nil
}

// spread post-multiplies the transform of objects 0..k by a translation of
// ((⌊k/2⌋ − i)·dx, 0, 0). Point positions are not touched.
func spread(out host.GeometryList, k int, dx float64) error {
	mid := k / 2
	for i := 0; i <= k; i++ {
		obj, ok := out.Object(i)
		if !ok {
			return fmt.Errorf("%w: object %d missing", ErrOutput, i)
		}
		shift := float64(mid-i) * dx
		if err := obj.SetTransform(host.PostTranslate(obj.Transform(), shift, 0, 0)); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
	}

	return nil
}

// write emits the K+1 output objects: the mean, then extremes by decreasing
// variance, then the optional pretty-show spacing.
func write(out host.GeometryList, template host.Object, m *pca.Model, k int, knobs Knobs) error {
	if err := writeMean(out, template, m.Mean); err != nil {
		return err
	}
	for j := 1; j <= k; j++ {
		if err := writeExtreme(out, template, m, j); err != nil {
			return err
		}
	}
	if knobs.PrettyShow {
		return spread(out, k, knobs.DeltaX)
	}

	return nil
}
