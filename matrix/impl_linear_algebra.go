// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels used by the PCA
// pipeline: multiplication, transpose, scaling and the Jacobi eigensolver.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Kernels never mutate their inputs; every result is a freshly allocated *Dense.
//   - Loop orders are fixed (i→k→j) so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulT      = "MulTransB"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opEigen     = "Eigen"
	opEigenSym  = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop; the inner loop streams a row of B and a row of C.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, k, j    int
		aik        float64
		aBase      int
		bBase, cBs int
	)
	for i = 0; i < a.r; i++ {
		aBase = i * a.c
		cBs = i * b.c
		for k = 0; k < a.c; k++ {
			aik = a.data[aBase+k]
			if aik == 0 {
				continue // sparse rows are common after centering
			}
			bBase = k * b.c
			for j = 0; j < b.c; j++ {
				out.data[cBs+j] += aik * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// MulTransB computes C = A × Bᵀ without materializing the transpose.
// Each C[i,j] is the dot product of row i of A and row j of B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Cols).
//
// Complexity:
//   - Time O(r_a*r_b*c), Space O(r_a*r_b).
//
// AI-Hints:
//   - With A == B this is the (unscaled) Gram matrix; only the upper triangle is
//     computed and mirrored so the result is exactly symmetric.
func MulTransB(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	if a.c != b.c {
		return nil, matrixErrorf(opMulT, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.r)
	if err != nil {
		return nil, matrixErrorf(opMulT, err)
	}

	same := a == b
	var i, j, k, jStart int
	var s float64
	for i = 0; i < a.r; i++ {
		jStart = 0
		if same {
			jStart = i
		}
		ra := a.data[i*a.c : (i+1)*a.c]
		for j = jStart; j < b.r; j++ {
			rb := b.data[j*b.c : (j+1)*b.c]
			s = NormZero
			for k = 0; k < a.c; k++ {
				s += ra[k] * rb[k]
			}
			out.data[i*b.r+j] = s
			if same {
				out.data[j*b.r+i] = s // mirror
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha*m as a fresh matrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Eigen performs the cyclic-pivot Jacobi eigen-decomposition of a symmetric matrix.
// It returns the eigenvalues (diagonal of the rotated matrix, in pivot order, NOT
// sorted) and Q whose column k is the unit eigenvector for value k.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); clone A, initialize Q = I.
//   - Stage 2: repeat up to maxIter times: pick the largest |A[p,q]| (p<q); stop once it
//     is below tol; otherwise apply the rotation that zeroes A[p,q] and accumulate it into Q.
//   - Stage 3: final convergence check; extract the diagonal.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrAsymmetry (validation).
//   - ErrNaNInf for non-finite entries.
//   - ErrMatrixEigenFailed if the max off-diagonal is still >= tol after maxIter rotations.
//
// Determinism:
//   - Fixed pivot search order (i↑, j↑, first maximum wins).
//
// Complexity:
//   - Time O(maxIter · n²) for the pivot search plus O(n) per rotation; Space O(n²).
//
// AI-Hints:
//   - Intended for the small N×N Gram matrices of PCA (N ≤ 10), where it is exact to
//     machine precision within a few dozen rotations.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.r
	a := m.Clone()           // working copy; m is never modified
	q, err := NewDense(n, n) // orthogonal accumulator
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter               int
		p, r               int     // pivot indices (p<r)
		maxOff, off        float64 // current max |A[p,r]|
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64 // temporaries
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,r) maximizing |A[p,r]|
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		// J.2: converged (an exactly diagonal A also stops a tol == 0 run)
		if maxOff < tol || maxOff == NormZero {
			break
		}

		// J.3: rotation parameters
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr−app)/(2*apr); t = sign(θ) / (|θ|+√(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: apply rotation to A
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: accumulate rotation into Q
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol && maxOff != NormZero {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
