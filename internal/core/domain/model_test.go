package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWordSetSkipsEmpty(t *testing.T) {
	set := NewWordSet("fox", "", "dog", "fox")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("fox"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []string{"dog", "fox"}, set.Words())
}

func TestWordsOfEmptySet(t *testing.T) {
	assert.Empty(t, WordSet{}.Words())
	assert.Equal(t, 0, WordSet(nil).Len())
}
