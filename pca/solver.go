// SPDX-License-Identifier: MIT

package pca

import (
	"math"

	"github.com/rerapony/Nuke-KeenTools-sub003/matrix"
)

// Solver diagonalizes a real symmetric positive-semidefinite matrix.
// Decompose returns the eigenvalues in any order together with a matrix whose
// column k is the unit eigenvector of value k. Implementations must be
// deterministic and must not retain g.
type Solver interface {
	Decompose(g *matrix.Dense) (values []float64, vectors *matrix.Dense, err error)
}

// symmetryRelTol scales the symmetry check of the solver input by max|gᵢⱼ|.
const symmetryRelTol = 1e-12

// GonumSolver uses gonum's mat.EigenSym (tridiagonal QL), the default.
type GonumSolver struct{}

// Decompose implements Solver.
func (GonumSolver) Decompose(g *matrix.Dense) ([]float64, *matrix.Dense, error) {
	return matrix.EigenSym(g, symmetryRelTol*maxAbs(g))
}

// JacobiSolver uses deterministic Jacobi rotations. It is exact to machine
// precision on the tiny Gram matrices this package produces and has no
// dependency beyond the matrix package.
type JacobiSolver struct {
	// Tol is the convergence threshold relative to max|gᵢⱼ|; 0 means 1e-13.
	Tol float64
	// MaxIter bounds the number of rotations; 0 means 100·n².
	MaxIter int
}

// Decompose implements Solver.
func (s JacobiSolver) Decompose(g *matrix.Dense) ([]float64, *matrix.Dense, error) {
	if err := matrix.ValidateNotNil(g); err != nil {
		return nil, nil, err
	}
	rel := s.Tol
	if rel <= 0 {
		rel = 1e-13
	}
	iters := s.MaxIter
	if iters <= 0 {
		iters = 100 * g.Rows() * g.Rows()
	}

	return matrix.Eigen(g, rel*maxAbs(g), iters)
}

// maxAbs returns max|gᵢⱼ|, or 0 for a nil matrix.
func maxAbs(g *matrix.Dense) float64 {
	if g == nil {
		return 0
	}
	var m float64
	for _, v := range g.RawData() {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}
