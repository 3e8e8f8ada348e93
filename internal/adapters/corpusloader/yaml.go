// Package corpusloader reads reference documents from a YAML file.
package corpusloader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

var (
	ErrNoDocuments   = errors.New("corpus contains no documents")
	ErrEmptyDocument = errors.New("document text is empty")
	ErrDuplicateID   = errors.New("duplicate document id")
)

// File is the on-disk layout of a corpus file.
type File struct {
	Documents []Entry `yaml:"documents"`
}

// Entry is one reference document. ID defaults to doc-<index>.
type Entry struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// LoadFile reads and validates the corpus at path.
func LoadFile(path string) ([]domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	docs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Parse decodes a YAML corpus and returns its documents in file order.
func Parse(r io.Reader) ([]domain.Document, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoDocuments
		}
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(file.Documents) == 0 {
		return nil, ErrNoDocuments
	}

	seen := make(map[string]int, len(file.Documents))
	docs := make([]domain.Document, 0, len(file.Documents))
	for i, entry := range file.Documents {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			id = fmt.Sprintf("doc-%d", i)
		}
		if strings.TrimSpace(entry.Text) == "" {
			return nil, fmt.Errorf("document %d (%s): %w", i, id, ErrEmptyDocument)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("document %d and %d share id %q: %w", prev, i, id, ErrDuplicateID)
		}
		seen[id] = i
		docs = append(docs, domain.Document{ID: id, Text: entry.Text})
	}
	return docs, nil
}
