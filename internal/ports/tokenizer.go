package ports

import (
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

// Tokenizer defines the interface for turning raw text into a set of words.
type Tokenizer interface {
	Tokenize(text string) domain.WordSet
}
