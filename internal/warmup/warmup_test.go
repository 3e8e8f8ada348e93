package warmup

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
)

type countingTokenizer struct{ calls atomic.Int64 }

func (c *countingTokenizer) Tokenize(text string) domain.WordSet {
	c.calls.Add(1)
	return domain.NewWordSet(strings.Fields(text)...)
}

type countingCalculator struct{ calls atomic.Int64 }

func (c *countingCalculator) Score(text string) domain.Verdict {
	c.calls.Add(1)
	return domain.Verdict{}
}

func TestWarmUpRunsEveryComponent(t *testing.T) {
	tok := &countingTokenizer{}
	calc := &countingCalculator{}

	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{
		Concurrency:    2,
		Iterations:     10,
		SampleTextSize: 100,
	})
	mgr.RegisterTokenizer(tok)
	mgr.RegisterCalculator(calc)

	stats := mgr.WarmUp(context.Background())

	assert.Equal(t, int64(20), tok.calls.Load())
	assert.Equal(t, int64(20), calc.calls.Load())
	assert.Equal(t, int64(20), stats.Tokenizations)
	assert.Equal(t, int64(20), stats.Scores)
}

func TestWarmUpStopsOnCancelledContext(t *testing.T) {
	calc := &countingCalculator{}
	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{
		Concurrency: 4,
		Iterations:  1000,
		Duration:    time.Second,
	})
	mgr.RegisterCalculator(calc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats := mgr.WarmUp(ctx)
	assert.Equal(t, int64(0), stats.Scores)
}

func TestGenerateSimilarText(t *testing.T) {
	original := generateSampleText(100)
	similar := generateSimilarText(original, 0.5)

	origWords := strings.Fields(original)
	simWords := strings.Fields(similar)
	assert.Len(t, simWords, len(origWords))
	assert.NotEqual(t, origWords[0], simWords[0])
	assert.Equal(t, origWords[len(origWords)-1], simWords[len(simWords)-1])
}
