// SPDX-License-Identifier: MIT

package pca

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Component is one principal direction: the variance λ along a unit vector v.
type Component struct {
	// Value is the eigenvalue λ of the sample covariance (variance along Vector).
	Value float64
	// Vector is a unit vector in ℝᴰ, signed so its largest |coordinate| is non-negative.
	Vector []float64
}

// Model is the result of Fit. It owns all of its slices; nothing aliases the
// sample matrix it was fitted on.
type Model struct {
	// Mean is the column mean μ of the samples (length Dim).
	Mean []float64
	// Components holds the Rank() retained components, by decreasing Value.
	Components []Component
	// Samples is the number of rows N of the fitted matrix.
	Samples int
	// Dim is the sample dimension D.
	Dim int
	// TotalVariance is the trace of the sample covariance, Σλₖ over all components.
	TotalVariance float64
}

// Rank returns the number of retained components r.
func (m *Model) Rank() int { return len(m.Components) }

// Variances returns λ₁ ≥ … ≥ λᵣ.
func (m *Model) Variances() []float64 {
	out := make([]float64, len(m.Components))
	for j, c := range m.Components {
		out[j] = c.Value
	}

	return out
}

// Proportions returns pⱼ = λⱼ / Σλₖ for the retained components.
// A model with zero total variance yields all-zero proportions.
func (m *Model) Proportions() []float64 {
	out := m.Variances()
	if m.TotalVariance <= 0 {
		for j := range out {
			out[j] = 0
		}
		return out
	}
	floats.Scale(1/m.TotalVariance, out)

	return out
}

// Extreme returns μ + scale·√λⱼ·vⱼ for the 0-based component j.
// With scale = 1 this is the sample one standard deviation along component j.
func (m *Model) Extreme(j int, scale float64) ([]float64, error) {
	if j < 0 || j >= len(m.Components) {
		return nil, pcaErrorf(opExtreme, ErrComponentRange)
	}
	c := m.Components[j]
	out := make([]float64, m.Dim)
	copy(out, m.Mean)
	floats.AddScaled(out, scale*math.Sqrt(c.Value), c.Vector)

	return out, nil
}

// Project returns the coefficients cⱼ = vⱼ·(x − μ) of x on every retained component.
func (m *Model) Project(x []float64) ([]float64, error) {
	if len(x) != m.Dim {
		return nil, pcaErrorf(opProject, ErrLength)
	}
	centered := make([]float64, m.Dim)
	floats.SubTo(centered, x, m.Mean)
	out := make([]float64, len(m.Components))
	for j, c := range m.Components {
		out[j] = floats.Dot(c.Vector, centered)
	}

	return out, nil
}

// Reconstruct maps coefficients back to sample space: μ + Σ cⱼ·vⱼ.
// Fewer coefficients than Rank() reconstruct from the leading components only.
func (m *Model) Reconstruct(coeffs []float64) ([]float64, error) {
	if len(coeffs) > len(m.Components) {
		return nil, pcaErrorf(opReconstruct, ErrLength)
	}
	out := make([]float64, m.Dim)
	copy(out, m.Mean)
	for j, cj := range coeffs {
		floats.AddScaled(out, cj, m.Components[j].Vector)
	}

	return out, nil
}
