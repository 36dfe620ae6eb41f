// SPDX-License-Identifier: MIT

package pcageo

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/rerapony/Nuke-KeenTools-sub003/host"
)

// Knob names as registered with the host and used in yaml presets.
const (
	KnobMinComponents     = "n_pca"
	KnobVarianceThreshold = "variance_threshold"
	KnobPrettyShow        = "pretty_show"
	KnobDeltaX            = "delta_x"
)

// Knob ranges and defaults.
const (
	DefaultMinComponents     = 1
	DefaultVarianceThreshold = 0.2
	DefaultDeltaX            = 2.0

	MinComponentsLo = 0
	MinComponentsHi = MaxInputs
	maxDeltaX       = math.MaxFloat64
)

// Knobs is the user-facing parameter set of the node.
type Knobs struct {
	// MinComponents is Kmin: extremes always emitted, clamped to the rank.
	MinComponents int `yaml:"n_pca"`
	// VarianceThreshold is τ: a further component is emitted while its own
	// variance proportion is at least τ.
	VarianceThreshold float64 `yaml:"variance_threshold"`
	// PrettyShow spreads the outputs along X by DeltaX.
	PrettyShow bool `yaml:"pretty_show"`
	DeltaX     float64 `yaml:"delta_x"`
}

// DefaultKnobs returns the knob defaults.
func DefaultKnobs() Knobs {
	return Knobs{
		MinComponents:     DefaultMinComponents,
		VarianceThreshold: DefaultVarianceThreshold,
		DeltaX:            DefaultDeltaX,
	}
}

// Clamp returns k with every value forced into its range.
// NaN floats fall back to their defaults.
func (k Knobs) Clamp() Knobs {
	k.MinComponents = min(max(k.MinComponents, MinComponentsLo), MinComponentsHi)
	if math.IsNaN(k.VarianceThreshold) {
		k.VarianceThreshold = DefaultVarianceThreshold
	}
	k.VarianceThreshold = math.Min(math.Max(k.VarianceThreshold, 0), 1)
	if math.IsNaN(k.DeltaX) {
		k.DeltaX = DefaultDeltaX
	}
	k.DeltaX = math.Min(math.Max(k.DeltaX, 0), maxDeltaX)

	return k
}

// AppendHash appends every knob that affects the output.
func (k Knobs) AppendHash(h host.Hash) {
	h.AppendInt(k.MinComponents)
	h.AppendFloat(k.VarianceThreshold)
	h.AppendBool(k.PrettyShow)
	h.AppendFloat(k.DeltaX)
}

// LoadKnobs decodes a yaml preset on top of DefaultKnobs and clamps the result.
// Keys absent from the document keep their defaults; unknown keys are rejected.
// An empty document yields the defaults.
func LoadKnobs(r io.Reader) (Knobs, error) {
	k := DefaultKnobs()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&k); err != nil && !errors.Is(err, io.EOF) {
		return Knobs{}, fmt.Errorf("pcageo: LoadKnobs: %w", err)
	}

	return k.Clamp(), nil
}
