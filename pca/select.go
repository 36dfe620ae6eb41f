// SPDX-License-Identifier: MIT

package pca

// SelectCount decides how many leading components to keep.
//
// Rule: start at j = clamp(minCount, 0, rank), then advance j while j < rank and
// proportions[j] ≥ threshold. In words: always keep at least minCount components
// (clamped to the rank) and additionally keep every following component whose
// own variance proportion meets the threshold.
//
// Edge cases:
//   - minCount ≤ 0 and threshold > p₁ → 0.
//   - minCount ≥ rank → rank, regardless of threshold.
//   - threshold ≤ 0 → rank.
//
// proportions shorter than rank is treated as if rank were len(proportions).
func SelectCount(proportions []float64, minCount int, threshold float64, rank int) int {
	if rank > len(proportions) {
		rank = len(proportions)
	}
	if rank < 0 {
		rank = 0
	}
	j := minCount
	if j > rank {
		j = rank
	}
	if j < 0 {
		j = 0
	}
	for j < rank && proportions[j] >= threshold {
		j++
	}

	return j
}
