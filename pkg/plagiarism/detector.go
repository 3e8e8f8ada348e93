// Package plagiarism scores a submitted text against a fixed reference corpus
// by word-set overlap and classifies the result into a risk band.
//
// The score is the highest Jaccard similarity between the submission's word set
// and any single reference document, scaled to a percentage:
//
//	percentage = max over documents of |words(input) ∩ words(doc)| / |words(input) ∪ words(doc)| * 100
package plagiarism

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/classify"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/corpus"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/core/domain"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/ports"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// ErrEmptyText is returned by Check when the submission has no non-blank content.
var ErrEmptyText = errors.New("no text content provided")

// Report is the outcome of Check.
type Report struct {
	domain.Verdict
	// BestMatch is the ID of the closest reference document, empty when nothing overlapped.
	BestMatch string
	// Words is the number of distinct words in the submission.
	Words int
}

// Detector scores submissions against a read-only reference corpus.
// A Detector is safe for concurrent use.
type Detector struct {
	corpus    *corpus.Corpus
	tokenizer ports.Tokenizer
	logger    ports.Logger
	ownLogger bool
	warmed    bool
}

// Option defines a functional option for configuring a Detector.
type Option func(*detectorConfig)

type detectorConfig struct {
	Documents    []domain.Document
	Logger       ports.Logger
	Tokenizer    ports.Tokenizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithDocuments replaces the built-in reference corpus.
func WithDocuments(docs []domain.Document) Option {
	return func(cfg *detectorConfig) {
		cfg.Documents = docs
	}
}

// WithLogger sets a custom logger.
func WithLogger(log l.Logger) Option {
	return func(cfg *detectorConfig) {
		cfg.Logger = logger.FromExisting(log)
	}
}

// WithNopLogger discards all log output.
func WithNopLogger() Option {
	return func(cfg *detectorConfig) {
		cfg.Logger = logger.NewNopLogger()
	}
}

// WithTokenizer sets a custom tokenizer for both the corpus and submissions.
func WithTokenizer(tok ports.Tokenizer) Option {
	return func(cfg *detectorConfig) {
		cfg.Tokenizer = tok
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *detectorConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *detectorConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a Detector. Without WithDocuments the built-in corpus is used.
func New(opts ...Option) (*Detector, error) {
	config := &detectorConfig{
		Documents:    corpus.DefaultDocuments(),
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(config)
	}

	ownLogger := false
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
		ownLogger = true
	}
	if config.Tokenizer == nil {
		config.Tokenizer = tokenizer.NewASCIITokenizer()
	}

	d := &Detector{
		corpus:    corpus.New(config.Tokenizer, config.Documents),
		tokenizer: config.Tokenizer,
		logger:    config.Logger,
		ownLogger: ownLogger,
	}
	d.logger.Info("Reference corpus loaded", "documents", d.corpus.Len())

	if config.WarmUp {
		d.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return d, nil
}

// Score tokenizes text, finds the best-matching reference document and classifies it.
// Blank text scores 0.
func (d *Detector) Score(text string) domain.Verdict {
	return classify.Classify(d.Match(text).Percentage)
}

// Match returns the best-matching reference document for text.
func (d *Detector) Match(text string) domain.Match {
	words := d.tokenizer.Tokenize(text)
	m := d.corpus.BestMatch(words)

	d.logger.Debug("Computed best match",
		"words", words.Len(),
		"percentage", m.Percentage,
		"document", m.DocumentID,
	)
	return m
}

// Check rejects blank submissions and scores the rest.
func (d *Detector) Check(text string) (Report, error) {
	if strings.TrimSpace(text) == "" {
		return Report{}, ErrEmptyText
	}

	words := d.tokenizer.Tokenize(text)
	m := d.corpus.BestMatch(words)
	verdict := classify.Classify(m.Percentage)

	d.logger.Debug("Checked submission",
		"words", words.Len(),
		"percentage", verdict.Percentage,
		"category", verdict.Category,
		"document", m.DocumentID,
	)

	return Report{
		Verdict:   verdict,
		BestMatch: m.DocumentID,
		Words:     words.Len(),
	}, nil
}

// Documents returns the reference documents in load order along with their distinct word counts.
func (d *Detector) Documents() ([]domain.Document, []int) {
	docs := make([]domain.Document, d.corpus.Len())
	counts := make([]int, d.corpus.Len())
	for i := range docs {
		docs[i] = d.corpus.Document(i)
		counts[i] = d.corpus.WordCount(i)
	}
	return docs, counts
}

// CorpusSize returns the number of reference documents.
func (d *Detector) CorpusSize() int {
	return d.corpus.Len()
}

// Close closes the logger if the Detector created it.
func (d *Detector) Close() error {
	if !d.ownLogger {
		return nil
	}
	return d.logger.Close()
}

// WarmUp runs the scoring path repeatedly so the first real requests are not slowed
// by cold caches. It runs at most once per Detector and is not safe to call concurrently
// with itself.
func (d *Detector) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if d.warmed {
		d.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(d.logger, config)
	warmupMgr.RegisterTokenizer(d.tokenizer)
	warmupMgr.RegisterCalculator(d)

	warmupMgr.WarmUp(ctx)
	d.warmed = true
}
