// SPDX-License-Identifier: MIT
// Package matrix - column statistics over sample matrices (rows = observations).
//
// Purpose:
//   - Center columns (subtract the column mean) for PCA.
//   - Sample covariance Cov = Xcᵀ·Xc/(n-1) (D×D) and its dual, the Gram matrix
//     G = Xc·Xcᵀ/(n-1) (n×n), which share their non-zero spectrum.
//
// Determinism:
//   - Fixed i→j accumulation; the mean is summed in row order, then scaled once.

package matrix

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opGram          = "Gram"
)

// CenterColumns returns a centered copy Xc = X − 1·μᵀ and the column means μ.
//
// Implementation:
//   - Stage 1: validate non-nil and finite.
//   - Stage 2: accumulate column sums row by row; scale by 1/r.
//   - Stage 3: subtract μ from every row into a fresh buffer.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	if err := ValidateFinite(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.r, X.c
	means := make([]float64, c)

	var i, j, base int
	for i = 0; i < r; i++ { // deterministic row order
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	xc := X.Clone()
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			xc.data[base+j] -= means[j]
		}
	}

	return xc, means, nil
}

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(n-1).
// Returns Cov (c×c) and the column means.
//
// Notes:
//   - Requires r >= 2; else ErrDimensionMismatch.
//   - For wide data (c ≫ r) prefer Gram: it is r×r and has the same non-zero eigenvalues.
func Covariance(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xct, err := Transpose(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	g, err := MulTransB(xct, xct) // (Xcᵀ)(Xcᵀ)ᵀ = XcᵀXc, exactly symmetric
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(g, 1.0/float64(X.r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Gram computes G = (Xc Xcᵀ)/(n-1) for an ALREADY centered matrix Xc.
// G is r×r, exactly symmetric and positive-semidefinite.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2.
//
// Complexity:
//   - Time O(r²·c/2), Space O(r²).
func Gram(xc *Dense) (*Dense, error) {
	if err := ValidateNotNil(xc); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	if xc.r < 2 {
		return nil, matrixErrorf(opGram, ErrDimensionMismatch)
	}
	g, err := MulTransB(xc, xc)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	inv := 1.0 / float64(xc.r-1)
	for i := range g.data {
		g.data[i] *= inv
	}

	return g, nil
}
