// SPDX-License-Identifier: MIT

package pcageo

import (
	"context"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
	"github.com/rerapony/Nuke-KeenTools-sub003/matrix"
)

// samples is the output of collect: the N×3V matrix plus the reference object
// whose topology the outputs copy.
type samples struct {
	x        *matrix.Dense
	template host.Object
	slots    []int // slot of each row
	points   int   // V
}

// connected returns the slots holding an input, in slot order, up to MaxInputs.
func connected(inputs host.Inputs) []int {
	if inputs == nil {
		return nil
	}
	var slots []int
	for s := 0; s < inputs.Len() && s < MaxInputs; s++ {
		if inputs.Input(s) != nil {
			slots = append(slots, s)
		}
	}

	return slots
}

// collect builds the sample matrix from every connected input.
//
// Implementation:
//   - Count connected slots; fewer than MinInputs fails before any upstream call.
//   - Per slot, in slot order: Validate, Geometry, first object's points.
//   - The first input fixes V and the template; later inputs must match V.
//   - Row i is (x₀ y₀ z₀ x₁ y₁ z₁ …) of input i; the matrix owns its storage.
//
// Errors:
//   - ErrInsufficientInputs, *TopologyError, *UpstreamError.
func collect(ctx context.Context, inputs host.Inputs) (*samples, error) {
	slots := connected(inputs)
	if len(slots) < MinInputs {
		return nil, ErrInsufficientInputs
	}

	rows := make([][]r3.Vec, 0, len(slots))
	var template host.Object
	for _, slot := range slots {
		in := inputs.Input(slot)
		if err := in.Validate(ctx); err != nil {
			return nil, &UpstreamError{Slot: slot, Err: err}
		}
		geo, err := in.Geometry(ctx)
		if err != nil {
			return nil, &UpstreamError{Slot: slot, Err: err}
		}

		var pts []r3.Vec
		if geo != nil {
			if obj, ok := geo.Object(0); ok {
				pts = obj.Points()
				if template == nil {
					template = obj
				}
			}
		}
		if len(pts) == 0 {
			want := 0
			if len(rows) > 0 {
				want = len(rows[0])
			}
			return nil, &TopologyError{Slot: slot, Want: want, Got: 0}
		}
		if len(rows) > 0 && len(pts) != len(rows[0]) {
			return nil, &TopologyError{Slot: slot, Want: len(rows[0]), Got: len(pts)}
		}
		rows = append(rows, pts)
	}

	v := len(rows[0])
	d := 3 * v
	data := make([]float64, len(rows)*d)
	for i, pts := range rows {
		row := data[i*d : (i+1)*d]
		for k, p := range pts {
			row[3*k] = p.X
			row[3*k+1] = p.Y
			row[3*k+2] = p.Z
		}
	}
	x, err := matrix.NewDenseFrom(len(rows), d, data)
	if err != nil {
		return nil, err
	}

	return &samples{x: x, template: template, slots: slots, points: v}, nil
}

// toPoints reshapes a length-3V vector into V points.
func toPoints(v []float64) []r3.Vec {
	pts := make([]r3.Vec, len(v)/3)
	for k := range pts {
		pts[k] = r3.Vec{X: v[3*k], Y: v[3*k+1], Z: v[3*k+2]}
	}

	return pts
}
