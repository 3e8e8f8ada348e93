// Package corpus holds the read-only reference documents and finds the
// best-matching one for a submission.
package corpus

import (
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/jaccard"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/ports"
)

// Corpus is an ordered, immutable set of tokenized reference documents.
// It is safe for concurrent use once constructed.
type Corpus struct {
	docs []domain.Document
	sets []domain.WordSet
}

// New tokenizes every document once, keeping load order.
func New(tokenizer ports.Tokenizer, docs []domain.Document) *Corpus {
	c := &Corpus{
		docs: make([]domain.Document, len(docs)),
		sets: make([]domain.WordSet, len(docs)),
	}
	copy(c.docs, docs)
	for i, doc := range c.docs {
		c.sets[i] = tokenizer.Tokenize(doc.Text)
	}
	return c
}

// Len returns the number of reference documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Document returns the i-th reference document.
func (c *Corpus) Document(i int) domain.Document {
	return c.docs[i]
}

// WordCount returns the number of distinct words in the i-th document.
func (c *Corpus) WordCount(i int) int {
	return c.sets[i].Len()
}

// BestMatch compares input against every reference document.
func (c *Corpus) BestMatch(input domain.WordSet) domain.Match {
	m := BestMatch(input, c.sets)
	if m.Index >= 0 {
		m.DocumentID = c.docs[m.Index].ID
	}
	return m
}

// BestMatch returns the highest Jaccard similarity between input and any entry,
// scaled to a percentage. Empty entries are skipped and an empty input short-circuits
// to 0 without scanning. On ties the first entry wins.
func BestMatch(input domain.WordSet, entries []domain.WordSet) domain.Match {
	best := domain.Match{Index: -1}
	if len(input) == 0 {
		return best
	}

	maxSimilarity := 0.0
	for i, entry := range entries {
		if len(entry) == 0 {
			continue
		}
		similarity := jaccard.Similarity(input, entry)
		if similarity > maxSimilarity {
			maxSimilarity = similarity
			best.Index = i
		}
	}

	best.Percentage = maxSimilarity * 100.0
	return best
}
