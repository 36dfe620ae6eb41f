// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/rerapony/Nuke-KeenTools-sub003/matrix"
)

// Fit computes the principal component model of the rows of x.
//
// Implementation:
//   - Stage 1 (Validate): x non-nil, at least two rows, all values finite.
//   - Stage 2 (Center): μ = column mean, X̃ = X − 1·μᵀ.
//   - Stage 3 (Decompose): G = X̃X̃ᵀ/(N−1) through the configured Solver.
//   - Stage 4 (Order): sort pairs by decreasing λ; ties keep ascending original index.
//   - Stage 5 (Rank): keep λⱼ > ε·λ₁ that also clear the round-off floor.
//   - Stage 6 (Lift): vⱼ = X̃ᵀuⱼ/√((N−1)λⱼ), renormalized, then sign-fixed.
//
// Errors:
//   - ErrEmptyData, ErrTooFewSamples, ErrNonFinite (input).
//   - ErrSolverFailed (solver error), ErrNonFinite (non-finite solver output).
//
// Determinism:
//   - Fixed loop orders and a deterministic sign convention: two calls on the same
//     x with the same options return bit-identical models.
//
// Complexity:
//   - Time O(N²·D + N³), Space O(N·D + r·D).
func Fit(x *matrix.Dense, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if x == nil {
		return nil, pcaErrorf(opFit, ErrEmptyData)
	}
	n, d := x.Shape()
	if n < 2 {
		return nil, pcaErrorf(opFit, ErrTooFewSamples)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, pcaErrorf(opFit, ErrNonFinite)
	}

	// Stage 2: center.
	xc, mean, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 3: decompose the N×N Gram matrix.
	g, err := matrix.Gram(xc)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	vals, vecs, err := o.solver.Decompose(g)
	if err != nil {
		return nil, pcaErrorf(opFit, errors.Join(ErrSolverFailed, err))
	}
	if len(vals) != n || vecs == nil || vecs.Rows() != n || vecs.Cols() != n {
		return nil, pcaErrorf(opFit, ErrSolverFailed)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, pcaErrorf(opFit, ErrNonFinite)
		}
	}
	if err = matrix.ValidateFinite(vecs); err != nil {
		return nil, pcaErrorf(opFit, ErrNonFinite)
	}

	// Stage 4: order by decreasing eigenvalue, stable on ties.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	model := &Model{
		Mean:          mean,
		Samples:       n,
		Dim:           d,
		TotalVariance: trace(g),
	}

	// Stage 5: rank.
	lead := vals[order[0]]
	floor := noiseFloor(n, d, maxAbs(x))
	cut := math.Max(o.eps*lead, floor)

	// Stage 6: lift the retained eigenvectors to ℝᴰ.
	xd := xc.RawData()
	scaleBase := float64(n - 1)
	for _, idx := range order {
		lambda := vals[idx]
		if lambda <= cut || lambda <= 0 {
			break // sorted: nothing after this passes either
		}
		u, err := vecs.Col(idx)
		if err != nil {
			return nil, pcaErrorf(opFit, err)
		}
		v := make([]float64, d)
		for i := 0; i < n; i++ { // v = X̃ᵀu, row-major streaming
			floats.AddScaled(v, u[i], xd[i*d:(i+1)*d])
		}
		floats.Scale(1/math.Sqrt(scaleBase*lambda), v)
		norm := floats.Norm(v, 2)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, pcaErrorf(opFit, ErrNonFinite)
		}
		floats.Scale(1/norm, v) // absorb round-off in the lift
		fixSign(v)
		model.Components = append(model.Components, Component{Value: lambda, Vector: v})
	}

	return model, nil
}

// fixSign flips v so that its largest-magnitude coordinate (first on ties) is
// non-negative.
func fixSign(v []float64) {
	best, at := -1.0, 0
	for i, x := range v {
		if a := math.Abs(x); a > best {
			best, at = a, i
		}
	}
	if len(v) == 0 || v[at] >= 0 {
		return
	}
	for i := range v {
		v[i] = -v[i]
		if v[i] == 0 {
			v[i] = 0 // no negative zeros
		}
	}
}

// trace returns Σ gᵢᵢ of a square matrix.
func trace(g *matrix.Dense) float64 {
	var s float64
	for i := 0; i < g.Rows(); i++ {
		v, _ := g.At(i, i) // in range by construction
		s += v
	}

	return s
}

func sq(v float64) float64 { return v * v }

// machineEps is the float64 unit round-off, 2⁻⁵².
const machineEps = 0x1p-52

// noiseFloor bounds the largest Gram eigenvalue that centering round-off
// alone can produce. Each centered coordinate of n identical samples is off
// by at most n·ε·max|x|, so trace(G) stays below 2·D·(n·ε·max|x|)²; the
// floor keeps a factor of eight above that.
func noiseFloor(n, d int, maxX float64) float64 {
	return float64(d) * sq(4*float64(n)*machineEps*maxX)
}
