package server

import (
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/config"
)

// New creates a fasthttp server for h using the given settings.
func New(cfg config.ServerConfig, h *Handler) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:               h.HandleRequest,
		Name:                  "PlagiarismServer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
}

// Addr returns the listen address for cfg.
func Addr(cfg config.ServerConfig) string {
	return fmt.Sprintf(":%d", cfg.Port)
}
