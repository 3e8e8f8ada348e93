package tokenizer

import (
	"strings"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/pool"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/ports"
)

// character classes for the ASCII lookup table
const (
	classDrop byte = iota
	classKeep
	classUpper
	classSpace
)

// ASCIITokenizer lowercases text, deletes everything that is not an ASCII letter,
// digit or whitespace, and splits the remainder on whitespace.
//
// Deleted characters do not separate words: "don't" becomes "dont" and
// "state-of-the-art" becomes "stateoftheart". Non-ASCII letters are deleted too.
type ASCIITokenizer struct {
	table    [128]byte
	bytePool *pool.BufferPool
}

// NewASCIITokenizer creates a new ASCII tokenizer.
func NewASCIITokenizer() ports.Tokenizer {
	return newASCIITokenizer()
}

func newASCIITokenizer() *ASCIITokenizer {
	t := &ASCIITokenizer{
		bytePool: pool.NewBufferPool(64, 4096),
	}
	for i := 0; i < 128; i++ {
		b := byte(i)
		switch {
		case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
			t.table[i] = classKeep
		case b >= 'A' && b <= 'Z':
			t.table[i] = classUpper
		case b == ' ', b == '\t', b == '\n', b == '\v', b == '\f', b == '\r':
			t.table[i] = classSpace
		default:
			t.table[i] = classDrop
		}
	}
	return t
}

var defaultTokenizer = newASCIITokenizer()

// Tokenize normalizes text with the shared default tokenizer.
func Tokenize(text string) domain.WordSet {
	return defaultTokenizer.Tokenize(text)
}

// Tokenize returns the set of lowercase alphanumeric words in text.
func (t *ASCIITokenizer) Tokenize(text string) domain.WordSet {
	set := make(domain.WordSet)
	if len(text) == 0 {
		return set
	}

	// Some non-ASCII runes lowercase into ASCII letters (the Kelvin sign becomes 'k'),
	// so anything outside ASCII goes through the full Unicode lowering first.
	if !isASCII(text) {
		text = strings.ToLower(text)
	}

	word := t.bytePool.Get()
	defer t.bytePool.Put(word)

	flush := func() {
		if len(*word) > 0 {
			set[string(*word)] = struct{}{}
			*word = (*word)[:0]
		}
	}

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 {
			// Part of a multi-byte rune; never a letter, digit or ASCII space.
			continue
		}
		switch t.table[b] {
		case classKeep:
			*word = append(*word, b)
		case classUpper:
			*word = append(*word, b+('a'-'A'))
		case classSpace:
			flush()
		}
	}
	flush()

	return set
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}
