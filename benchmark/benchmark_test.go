package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/corpus"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/jaccard"
	"github.com/baditaflorin/go_plagiarism_similarity/pkg/plagiarism"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The quick brown fox jumps over the lazy dog. This sentence contains all letters of the English alphabet and is commonly used for testing text processing algorithms and systems."
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	if sb.Len() > size {
		return sb.String()[:size]
	}
	return sb.String()
}

// generateWords returns n distinct words sharing the given prefix.
func generateWords(prefix string, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return words
}

// generateCorpus creates n documents of wordsPerDoc words, each overlapping its neighbours.
func generateCorpus(n, wordsPerDoc int) []domain.Document {
	docs := make([]domain.Document, n)
	for i := range docs {
		words := make([]string, wordsPerDoc)
		for w := range words {
			words[w] = fmt.Sprintf("w%d", i*wordsPerDoc/2+w)
		}
		docs[i] = domain.Document{ID: fmt.Sprintf("doc-%d", i), Text: strings.Join(words, " ")}
	}
	return docs
}

// BenchmarkTokenize measures tokenization throughput for different input sizes
func BenchmarkTokenize(b *testing.B) {
	benchmarks := []struct {
		name  string
		input string
	}{
		{"Small-100B", generateText(100)},
		{"Medium-10KB", generateText(10000)},
		{"Large-100KB", generateText(100000)},
		{"NonASCII", strings.Repeat("Café naïve résumé, ", 500)},
	}

	tok := tokenizer.NewASCIITokenizer()
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				_ = tok.Tokenize(bm.input)
			}
		})
	}
}

// BenchmarkJaccard measures set similarity on sets of growing size
func BenchmarkJaccard(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		setA := domain.NewWordSet(generateWords("w", size)...)
		// Half of setB overlaps setA.
		setB := domain.NewWordSet(append(generateWords("w", size/2), generateWords("v", size/2)...)...)

		b.Run(fmt.Sprintf("%d-words", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = jaccard.Similarity(setA, setB)
			}
		})
	}
}

// BenchmarkBestMatch measures corpus scans for corpora of the expected size
func BenchmarkBestMatch(b *testing.B) {
	tok := tokenizer.NewASCIITokenizer()
	input := tok.Tokenize(strings.Join(generateWords("w", 300), " "))

	for _, n := range []int{5, 20, 50} {
		c := corpus.New(tok, generateCorpus(n, 300))
		b.Run(fmt.Sprintf("%d-docs", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = c.BestMatch(input)
			}
		})
	}
}

// BenchmarkScore measures the full scoring path, serially and in parallel
func BenchmarkScore(b *testing.B) {
	d, err := plagiarism.New(plagiarism.WithNopLogger())
	if err != nil {
		b.Fatal(err)
	}
	text := generateText(2000)

	b.Run("Serial", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = d.Score(text)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = d.Score(text)
			}
		})
	})
}
