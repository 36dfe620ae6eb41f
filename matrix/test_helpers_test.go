// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rerapony/Nuke-KeenTools-sub003/matrix"
)

// MustDense ALLOCATES an r×c *Dense from row-major values or fails the test.
func MustDense(t *testing.T, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense(rows, cols)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense fills an r×c matrix with uniform values in [-1,1) from a fixed seed.
func RandomDense(t *testing.T, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return MustDense(t, rows, cols, data...)
}

// RequireClose asserts element-wise |a-b| <= tol for identical shapes.
func RequireClose(t *testing.T, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := MustAt(t, want, i, j), MustAt(t, got, i, j)
			require.LessOrEqualf(t, math.Abs(w-g), tol, "mismatch at [%d,%d]: want %g got %g", i, j, w, g)
		}
	}
}

// checkEigenPairs asserts A·v_k = λ_k·v_k and ‖v_k‖ = 1 for every column k of vecs.
func checkEigenPairs(t *testing.T, a *matrix.Dense, vals []float64, vecs *matrix.Dense, tol float64) {
	t.Helper()
	n := a.Rows()
	require.Len(t, vals, n)
	for k := 0; k < n; k++ {
		v, err := vecs.Col(k)
		require.NoError(t, err)
		var norm float64
		for i := 0; i < n; i++ {
			var av float64
			for j := 0; j < n; j++ {
				av += MustAt(t, a, i, j) * v[j]
			}
			require.InDeltaf(t, vals[k]*v[i], av, tol, "A·v != λ·v for pair %d row %d", k, i)
			norm += v[i] * v[i]
		}
		require.InDelta(t, 1.0, norm, tol)
	}
}
