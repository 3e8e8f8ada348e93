package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/corpusloader"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/config"
	"github.com/baditaflorin/go_plagiarism_similarity/internal/server"
	"github.com/baditaflorin/go_plagiarism_similarity/pkg/plagiarism"
	"github.com/baditaflorin/l"
)

func main() {
	cfg := config.Load()

	// Command-line flags override the environment
	flag.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "HTTP server port")
	flag.DurationVar(&cfg.Server.ReadTimeout, "read-timeout", cfg.Server.ReadTimeout, "HTTP read timeout")
	flag.DurationVar(&cfg.Server.WriteTimeout, "write-timeout", cfg.Server.WriteTimeout, "HTTP write timeout")
	flag.IntVar(&cfg.Server.MaxRequestSize, "max-request-size", cfg.Server.MaxRequestSize, "Maximum request size in bytes")
	flag.IntVar(&cfg.Server.Concurrency, "concurrency", cfg.Server.Concurrency, "Maximum number of concurrent connections (0 = fasthttp default)")
	flag.StringVar(&cfg.Server.AllowedOrigin, "allowed-origin", cfg.Server.AllowedOrigin, "Value of Access-Control-Allow-Origin on /check")
	flag.StringVar(&cfg.CorpusFile, "corpus", cfg.CorpusFile, "YAML file of reference documents (empty = built-in corpus)")
	flag.BoolVar(&cfg.WarmUp, "warm-up", cfg.WarmUp, "Perform system warm-up on startup")
	flag.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "Log file path (empty = stdout)")
	flag.BoolVar(&cfg.Log.JSON, "log-json", cfg.Log.JSON, "Write logs as JSON")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := createLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.FromExisting(baseLogger)
	defer log.Close()

	log.Info("Starting plagiarism check server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
		"corpus_file", cfg.CorpusFile,
	)

	detector, err := newDetector(cfg, baseLogger)
	if err != nil {
		log.Error("Failed to initialize detector", "error", err)
		log.Close()
		os.Exit(1)
	}

	log.Info("Detector initialized",
		"documents", detector.CorpusSize(),
		"warm_up", cfg.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	handler := server.NewHandler(detector, log, cfg.Server.AllowedOrigin)
	srv := server.New(cfg.Server, handler)

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := server.Addr(cfg.Server)
	log.Info("Server listening", "address", addr)
	if err := srv.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// newDetector builds the detector from the configured corpus source.
func newDetector(cfg *config.Config, baseLogger l.Logger) (*plagiarism.Detector, error) {
	opts := []plagiarism.Option{
		plagiarism.WithLogger(baseLogger),
		plagiarism.WithWarmUp(cfg.WarmUp),
	}

	if cfg.CorpusFile != "" {
		docs, err := corpusloader.LoadFile(cfg.CorpusFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plagiarism.WithDocuments(docs))
	}

	return plagiarism.New(opts...)
}

// createLogger creates and configures a logger
func createLogger(cfg config.LogConfig) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	log, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig(output, cfg.JSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}
