package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup, in bytes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Stats reports what a warmup run did.
type Stats struct {
	Tokenizations int64
	Scores        int64
	Duration      time.Duration
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	tokenizers  []ports.Tokenizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterTokenizer adds a tokenizer to be warmed up
func (wm *Manager) RegisterTokenizer(tok ports.Tokenizer) {
	wm.tokenizers = append(wm.tokenizers, tok)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.calculators)+len(wm.tokenizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	var stats Stats
	stats.Tokenizations = wm.warmUpTokenizers(warmupCtx)
	stats.Scores = wm.warmUpCalculators(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	stats.Duration = time.Since(startTime)
	wm.logger.Info("System warmup completed",
		"duration", stats.Duration,
		"tokenizations", stats.Tokenizations,
		"scores", stats.Scores,
	)
	return stats
}

// warmUpTokenizers runs warmup for all registered tokenizers
func (wm *Manager) warmUpTokenizers(ctx context.Context) int64 {
	if len(wm.tokenizers) == 0 {
		return 0
	}

	wm.logger.Debug("Warming up tokenizers", "count", len(wm.tokenizers))
	sampleText := generateSampleText(wm.config.SampleTextSize)

	return wm.run(ctx, func(int) int64 {
		for _, tok := range wm.tokenizers {
			_ = tok.Tokenize(sampleText)
		}
		return int64(len(wm.tokenizers))
	})
}

// warmUpCalculators runs warmup for all registered calculators
func (wm *Manager) warmUpCalculators(ctx context.Context) int64 {
	if len(wm.calculators) == 0 {
		return 0
	}

	wm.logger.Debug("Warming up calculators", "count", len(wm.calculators))

	// Texts at different overlap levels so every classification band gets exercised.
	original := generateSampleText(wm.config.SampleTextSize)
	texts := []string{
		original,
		generateSimilarText(original, 0.1),
		generateSimilarText(original, 0.5),
		"warmup unrelated submission text",
	}

	return wm.run(ctx, func(iteration int) int64 {
		text := texts[iteration%len(texts)]
		for _, calculator := range wm.calculators {
			_ = calculator.Score(text)
		}
		return int64(len(wm.calculators))
	})
}

// run executes fn Iterations times on each of Concurrency goroutines, stopping early
// when ctx is done. It returns the sum of fn's results.
func (wm *Manager) run(ctx context.Context, fn func(iteration int) int64) int64 {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var done int64
			for j := 0; j < wm.config.Iterations; j++ {
				if ctx.Err() != nil {
					break
				}
				done += fn(j)
			}

			mu.Lock()
			total += done
			mu.Unlock()
		}()
	}
	wg.Wait()
	return total
}

// Helper functions for generating test data

// generateSampleText creates sample text of roughly the specified size
func generateSampleText(size int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"data", "structures", "organizing", "storing", "computer", "efficiently",
		"machine", "learning", "methods", "performance", "tasks",
		"web", "documents", "resources", "identified", "uniform",
	}

	var sb strings.Builder
	wordsNeeded := size / 5 // Assuming average word length of 5
	if wordsNeeded < 1 {
		wordsNeeded = 1
	}

	for i := 0; i < wordsNeeded; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}
	return sb.String()
}

// generateSimilarText replaces the leading diffRatio share of words in original.
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"different", "unique", "new", "fresh", "novel",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)
	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}
