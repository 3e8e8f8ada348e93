package domain

import "sort"

// Document is a piece of text identified by ID.
type Document struct {
	ID   string
	Text string
}

// WordSet is a deduplicated set of normalized tokens.
type WordSet map[string]struct{}

// NewWordSet builds a set from the given words. Empty words are skipped.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Len returns the number of distinct words.
func (s WordSet) Len() int {
	return len(s)
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the words in ascending order.
func (s WordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Match is the outcome of comparing a word set against a corpus.
type Match struct {
	// Percentage is the best similarity scaled to [0,100].
	Percentage float64
	// Index of the winning corpus entry, -1 when nothing overlapped.
	Index int
	// DocumentID of the winning entry, empty when Index is -1.
	DocumentID string
}

// Category is a discrete similarity risk band.
type Category string

const (
	CategoryHigh     Category = "high"
	CategoryModerate Category = "moderate"
	CategoryLow      Category = "low"
	CategoryMinimal  Category = "minimal"
)

// Verdict holds the percentage and the human-readable message for a scored submission.
type Verdict struct {
	Percentage float64
	Category   Category
	Message    string
}
