// Package jaccard computes set overlap between two word sets.
package jaccard

import (
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

// Similarity returns |a ∩ b| / |a ∪ b|.
// If either set is empty the result is 0.
func Similarity(a, b domain.WordSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for w := range small {
		if _, ok := large[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
