// Package pca fits a principal component model to a small set of
// high-dimensional samples, one sample per row of a matrix.Dense.
//
// 🚀 What does it compute?
//
//	Given N samples xᵢ ∈ ℝᴰ (typically N ≤ 10 meshes, D = 3·vertexCount):
//	  • the mean μ,
//	  • the principal components (λⱼ, vⱼ) of the sample covariance
//	    C = X̃ᵀX̃/(N−1), sorted by decreasing λ,
//	  • the variance proportions pⱼ = λⱼ/Σλₖ.
//
// ✨ Key properties:
//   - Gram formulation: the N×N matrix X̃X̃ᵀ/(N−1) is diagonalized and its
//     eigenvectors are lifted to ℝᴰ, so the cost is O(N²·D) instead of O(D³).
//   - Deterministic: ties keep their original order and every component is
//     signed so that its largest-magnitude coordinate is non-negative.
//   - Rank: components with λ ≤ ε·λ₁ (default ε = 1e-6) are discarded.
//   - Pluggable eigensolver: GonumSolver (default) or JacobiSolver.
//
// ⚙️ Usage:
//
//	m, err := pca.Fit(x, pca.WithEpsilon(1e-6))
//	k := pca.SelectCount(m.Proportions(), minCount, threshold, m.Rank())
//	extreme, _ := m.Extreme(0, 1) // μ + √λ₁·v₁
//
// See example_test.go for a runnable walkthrough.
package pca
