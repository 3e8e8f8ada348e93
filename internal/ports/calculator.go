package ports

import (
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for scoring a submission against a reference corpus.
type SimilarityCalculator interface {
	Score(text string) domain.Verdict
}
