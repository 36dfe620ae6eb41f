// SPDX-License-Identifier: MIT
// Package matrix - bridge to gonum for the LAPACK-grade symmetric eigensolver.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum returns a gonum *mat.Dense holding a copy of m.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return mat.NewDense(m.r, m.c, m.RawData()), nil
}

// FromGonum copies any gonum matrix into a fresh *Dense.
func FromGonum(a mat.Matrix) (*Dense, error) {
	r, c := a.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = a.At(i, j)
		}
	}

	return out, nil
}

// EigenSym performs the eigen decomposition of a symmetric square matrix with
// gonum's mat.EigenSym, which produces real-valued results.
// Values are ordered *lowest* to *highest*; column k of the returned matrix is
// the unit eigenvector of value k.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrAsymmetry (validation with tol).
//   - ErrNaNInf for non-finite input.
//   - ErrMatrixEigenFailed when gonum's factorization reports failure.
func EigenSym(m *Dense, tol float64) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	// Only the upper triangle is read by NewSymDense.
	sym := mat.NewSymDense(m.r, m.RawData())
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigenSym, ErrMatrixEigenFailed)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	out, err := FromGonum(&vecs)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	return vals, out, nil
}
