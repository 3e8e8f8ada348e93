package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_plagiarism_similarity/pkg/plagiarism"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var testCorpus = filepath.Join("..", "..", "testdata", "corpus.yaml")

func TestCheckFromArgs(t *testing.T) {
	out, err := run(t, "", "check", "--corpus", testCorpus, "The", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog.")
	require.NoError(t, err)
	assert.Contains(t, out, "Similarity: 100.0% (high)")
	assert.Contains(t, out, "Best match: typography")
}

func TestCheckFromStdinJSON(t *testing.T) {
	out, err := run(t, "zzz qqq xyzzy", "check", "--json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0.0, result["percentage"])
	assert.Equal(t, "minimal", result["category"])
	assert.Equal(t, "", result["best_match"])
}

func TestCheckFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Data structures are a way of organizing and storing data in a computer."), 0o644))

	out, err := run(t, "", "check", "--corpus", testCorpus, "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Best match: doc-2")
}

func TestCheckRejectsEmptyInput(t *testing.T) {
	_, err := run(t, "   ", "check")
	assert.ErrorIs(t, err, plagiarism.ErrEmptyText)

	_, err = run(t, "", "check", "--file", "x.txt", "some", "text")
	assert.Error(t, err)
}

func TestCorpusCommand(t *testing.T) {
	out, err := run(t, "", "corpus")
	require.NoError(t, err)
	assert.Contains(t, out, "typography")
	assert.Contains(t, out, "data-structures")

	out, err = run(t, "", "corpus", "--corpus", testCorpus, "--json")
	require.NoError(t, err)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "go", entries[1]["id"])
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "plagcheck version "+version+"\n", out)
}

func TestCheckWithMissingCorpus(t *testing.T) {
	_, err := run(t, "", "check", "--corpus", filepath.Join(t.TempDir(), "missing.yaml"), "hello")
	assert.Error(t, err)
}
