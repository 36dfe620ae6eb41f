// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
// Time: O(r*c), early exit on the first violation. Space: O(1).
//
// Policy:
//   - a and b must be non-nil with identical shapes.
//   - Negative tolerances are taken as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - A NaN element never compares close.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for idx, bv := range b.data {
		if !(math.Abs(a.data[idx]-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// AllCloseUpToColumnSign is AllClose after flipping each column of a to
// agree in sign with the same column of b on its largest-magnitude entry.
// Eigenvector matrices from different solvers compare equal under it.
func AllCloseUpToColumnSign(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	flipped := a.Clone()
	r, c := a.r, a.c
	for j := 0; j < c; j++ {
		best, bestAbs := 0, -1.0
		for i := 0; i < r; i++ {
			if v := math.Abs(b.data[i*c+j]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if (flipped.data[best*c+j] < 0) != (b.data[best*c+j] < 0) {
			for i := 0; i < r; i++ {
				flipped.data[i*c+j] = -flipped.data[i*c+j]
			}
		}
	}

	return AllClose(flipped, b, rtol, atol)
}
