package pca_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rerapony/Nuke-KeenTools-sub003/matrix"
	"github.com/rerapony/Nuke-KeenTools-sub003/pca"
)

// mustDense builds a rows×cols sample matrix or fails the test.
func mustDense(t *testing.T, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return m
}

// twoTriangles: one triangle, the second sample lifts vertex 2 by one unit in z.
func twoTriangles(t *testing.T) *matrix.Dense {
	return mustDense(t, 2, 9,
		0, 0, 0, 1, 0, 0, 0, 1, 0,
		0, 0, 0, 1, 0, 0, 0, 1, 1,
	)
}

// hadamardSamples returns four samples whose centered columns 0, 4 and 8 are
// orthogonal with variance proportions 0.7, 0.2 and 0.1.
func hadamardSamples(t *testing.T) *matrix.Dense {
	a, b, c := math.Sqrt(0.7), math.Sqrt(0.2), math.Sqrt(0.1)
	signs := [4][3]float64{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	data := make([]float64, 0, 4*9)
	for _, s := range signs {
		data = append(data,
			5+s[0]*a, 0, 0,
			1, 2+s[1]*b, 0,
			0, 1, 3+s[2]*c,
		)
	}

	return mustDense(t, 4, 9, data...)
}

func TestFit_TwoTriangles(t *testing.T) {
	t.Parallel()
	m, err := pca.Fit(twoTriangles(t))
	require.NoError(t, err)

	require.Equal(t, 2, m.Samples)
	require.Equal(t, 9, m.Dim)
	require.Equal(t, 1, m.Rank())
	require.InDelta(t, 0.5, m.Mean[8], 1e-15)
	require.InDelta(t, 0.5, m.Components[0].Value, 1e-12) // (0.25+0.25)/(N-1)
	require.InDelta(t, 1.0, m.Components[0].Vector[8], 1e-12)

	ext, err := m.Extreme(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.5+math.Sqrt(0.5), ext[8], 1e-12)
	for i := 0; i < 8; i++ {
		require.InDelta(t, m.Mean[i], ext[i], 1e-12)
	}
}

func TestFit_IdenticalSamplesHaveRankZero(t *testing.T) {
	t.Parallel()
	row := []float64{0.1, 0.2, 0.3, 1.7, -4.2, 9.9}
	data := append(append(append([]float64{}, row...), row...), row...)
	m, err := pca.Fit(mustDense(t, 3, 6, data...))
	require.NoError(t, err)
	require.Zero(t, m.Rank())
	for i, v := range row {
		require.InDelta(t, v, m.Mean[i], 1e-15)
	}
	require.Empty(t, m.Proportions())
}

// TestFit_IdenticalSamplesAnyCount repeats non-dyadic rows whose means do not
// round-trip exactly; centering residue must never count as variance.
func TestFit_IdenticalSamplesAnyCount(t *testing.T) {
	t.Parallel()
	row := []float64{0.1, 1.0 / 3, -2.7, 1234.567, 1e-3, -98765.4321}
	for n := 2; n <= 10; n++ {
		data := make([]float64, 0, n*len(row))
		for i := 0; i < n; i++ {
			data = append(data, row...)
		}
		m, err := pca.Fit(mustDense(t, n, len(row), data...))
		require.NoError(t, err)
		require.Zerof(t, m.Rank(), "n=%d", n)
	}
}

// TestFit_KeepsSmallVarianceOnLargeCoordinates places meshes a million units
// from the origin and moves one coordinate by 1e-4.
func TestFit_KeepsSmallVarianceOnLargeCoordinates(t *testing.T) {
	t.Parallel()
	a := []float64{1e6, 2e6, -3e6}
	b := []float64{1e6 + 1e-4, 2e6, -3e6}
	m, err := pca.Fit(mustDense(t, 2, 3, append(append([]float64{}, a...), b...)...))
	require.NoError(t, err)
	require.Equal(t, 1, m.Rank())
	require.InDelta(t, 0.5e-8, m.Variances()[0], 1e-12)
	require.InDelta(t, 1.0, m.Components[0].Vector[0], 1e-6)
}

func TestFit_ProportionsAndOrder(t *testing.T) {
	t.Parallel()
	m, err := pca.Fit(hadamardSamples(t))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rank())

	p := m.Proportions()
	require.InDeltaSlice(t, []float64{0.7, 0.2, 0.1}, p, 1e-12)
	require.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(m.Variances()))))

	// Components are axis-aligned on coordinates 0, 4, 8, signed positive.
	for j, axis := range []int{0, 4, 8} {
		require.InDelta(t, 1.0, m.Components[j].Vector[axis], 1e-12)
	}
}

func TestFit_ComponentsAreOrthonormal(t *testing.T) {
	t.Parallel()
	m, err := pca.Fit(randomSamples(t, 6, 30, 5))
	require.NoError(t, err)
	require.Equal(t, 5, m.Rank())
	for a := range m.Components {
		for b := range m.Components {
			var dot float64
			for i := range m.Components[a].Vector {
				dot += m.Components[a].Vector[i] * m.Components[b].Vector[i]
			}
			want := 0.0
			if a == b {
				want = 1
			}
			require.InDelta(t, want, dot, 1e-10)
		}
	}
}

func TestFit_MatchesFullCovarianceSpectrum(t *testing.T) {
	t.Parallel()
	x := randomSamples(t, 4, 6, 9)
	m, err := pca.Fit(x)
	require.NoError(t, err)

	cov, _, err := matrix.Covariance(x)
	require.NoError(t, err)
	vals, _, err := matrix.EigenSym(cov, 1e-12)
	require.NoError(t, err)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	for j, c := range m.Components {
		require.InDelta(t, vals[j], c.Value, 1e-10)
	}
}

func TestFit_Deterministic(t *testing.T) {
	t.Parallel()
	x := randomSamples(t, 7, 24, 21)
	a, err := pca.Fit(x)
	require.NoError(t, err)
	b, err := pca.Fit(x)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFit_SignConvention(t *testing.T) {
	t.Parallel()
	m, err := pca.Fit(randomSamples(t, 5, 12, 4))
	require.NoError(t, err)
	for _, c := range m.Components {
		best, at := -1.0, 0
		for i, v := range c.Vector {
			if math.Abs(v) > best {
				best, at = math.Abs(v), i
			}
		}
		require.GreaterOrEqual(t, c.Vector[at], 0.0)
	}
}

func TestFit_JacobiAgreesWithGonum(t *testing.T) {
	t.Parallel()
	x := randomSamples(t, 8, 15, 33)
	g, err := pca.Fit(x, pca.WithSolver(pca.GonumSolver{}))
	require.NoError(t, err)
	j, err := pca.Fit(x, pca.WithSolver(pca.JacobiSolver{}))
	require.NoError(t, err)

	require.Equal(t, g.Rank(), j.Rank())
	for k := range g.Components {
		require.InDelta(t, g.Components[k].Value, j.Components[k].Value, 1e-10)
		require.InDeltaSlice(t, g.Components[k].Vector, j.Components[k].Vector, 1e-8)
	}
}

func TestFit_EpsilonCutsRank(t *testing.T) {
	t.Parallel()
	x := hadamardSamples(t)
	// λ₃/λ₁ = 1/7 ≈ 0.143 is dropped by ε = 0.2 but kept by ε = 0.1.
	m, err := pca.Fit(x, pca.WithEpsilon(0.2))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rank())
	m, err = pca.Fit(x, pca.WithEpsilon(0.1))
	require.NoError(t, err)
	require.Equal(t, 3, m.Rank())

	require.Panics(t, func() { pca.WithEpsilon(-1) })
}

func TestFit_ProjectReconstructRoundTrip(t *testing.T) {
	t.Parallel()
	x := randomSamples(t, 5, 9, 17)
	m, err := pca.Fit(x)
	require.NoError(t, err)
	for i := 0; i < x.Rows(); i++ {
		row, err := x.Row(i)
		require.NoError(t, err)
		coeffs, err := m.Project(row)
		require.NoError(t, err)
		back, err := m.Reconstruct(coeffs)
		require.NoError(t, err)
		require.InDeltaSlice(t, row, back, 1e-10)
	}

	_, err = m.Project([]float64{1})
	require.ErrorIs(t, err, pca.ErrLength)
	_, err = m.Reconstruct(make([]float64, m.Rank()+1))
	require.ErrorIs(t, err, pca.ErrLength)
	_, err = m.Extreme(m.Rank(), 1)
	require.ErrorIs(t, err, pca.ErrComponentRange)
}

func TestFit_InputErrors(t *testing.T) {
	t.Parallel()
	_, err := pca.Fit(nil)
	require.ErrorIs(t, err, pca.ErrEmptyData)

	_, err = pca.Fit(mustDense(t, 1, 3, 1, 2, 3))
	require.ErrorIs(t, err, pca.ErrTooFewSamples)

	_, err = pca.Fit(mustDense(t, 2, 2, 1, math.Inf(1), 0, 0))
	require.ErrorIs(t, err, pca.ErrNonFinite)
	require.True(t, pca.IsNumerical(err))
}

// failingSolver reports a fixed error; nanSolver returns non-finite values.
type failingSolver struct{}

func (failingSolver) Decompose(*matrix.Dense) ([]float64, *matrix.Dense, error) {
	return nil, nil, errors.New("did not converge")
}

type nanSolver struct{}

func (nanSolver) Decompose(g *matrix.Dense) ([]float64, *matrix.Dense, error) {
	n := g.Rows()
	vals := make([]float64, n)
	vals[0] = math.NaN()
	vecs, _ := matrix.NewDense(n, n)

	return vals, vecs, nil
}

func TestFit_SolverFailures(t *testing.T) {
	t.Parallel()
	_, err := pca.Fit(twoTriangles(t), pca.WithSolver(failingSolver{}))
	require.ErrorIs(t, err, pca.ErrSolverFailed)
	require.True(t, pca.IsNumerical(err))

	_, err = pca.Fit(twoTriangles(t), pca.WithSolver(nanSolver{}))
	require.ErrorIs(t, err, pca.ErrNonFinite)
}
