// Package server exposes the plagiarism detector over HTTP using fasthttp.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/ports"
	"github.com/baditaflorin/go_plagiarism_similarity/pkg/plagiarism"
)

const requestIDHeader = "X-Request-ID"

// Checker is the part of the detector the server needs.
type Checker interface {
	Check(text string) (plagiarism.Report, error)
	CorpusSize() int
}

// CheckRequest is the JSON form of a /check request.
type CheckRequest struct {
	Text string `json:"text"`
}

// CheckResponse is the body of a successful /check request.
type CheckResponse struct {
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
	Category   string  `json:"category"`
	BestMatch  string  `json:"best_match,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler routes and serves requests.
type Handler struct {
	checker       Checker
	logger        ports.Logger
	allowedOrigin string
	now           func() time.Time
}

// NewHandler creates a handler. An empty allowedOrigin means "*".
func NewHandler(checker Checker, logger ports.Logger, allowedOrigin string) *Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return &Handler{
		checker:       checker,
		logger:        logger,
		allowedOrigin: allowedOrigin,
		now:           time.Now,
	}
}

// HandleRequest is the fasthttp request handler.
func (h *Handler) HandleRequest(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx.Response.Header.Set(requestIDHeader, requestID)
	ctx.Response.Header.Set("Server", "PlagiarismServer")

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Panic while handling request", "request_id", requestID, "panic", r)
			ctx.Response.ResetBody()
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			h.writeJSONError(ctx, fmt.Sprintf("Server error: %v", r))
		}

		h.logger.Info("Request processed",
			"request_id", requestID,
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", ctx.Response.StatusCode(),
			"ip", ctx.RemoteIP().String(),
			"duration", time.Since(startTime),
		)
	}()

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealthCheck(ctx)
	case "/check":
		h.handleCheck(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found")
	}
}

// handleHealthCheck responds to health check requests
func (h *Handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"status":    "ok",
		"time":      h.now().Format(time.RFC3339),
		"documents": h.checker.CorpusSize(),
	})
}

// handleCheck scores the submitted text.
func (h *Handler) handleCheck(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", h.allowedOrigin)
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")

	// CORS pre-flight
	if ctx.IsOptions() {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Only POST method is allowed")
		return
	}

	text, err := decodeText(ctx)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	report, err := h.checker.Check(text)
	if err != nil {
		if errors.Is(err, plagiarism.ErrEmptyText) {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			h.writeJSONError(ctx, "No text content provided")
			return
		}
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.writeJSONError(ctx, "Server error: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, CheckResponse{
		Percentage: roundPercentage(report.Percentage),
		Message:    report.Message,
		Category:   string(report.Category),
		BestMatch:  report.BestMatch,
	})
}

// decodeText extracts the submission from the request body. JSON bodies carry it in
// the "text" field, form bodies start with "text=", anything else is the text itself.
func decodeText(ctx *fasthttp.RequestCtx) (string, error) {
	body := ctx.PostBody()
	contentType := ctx.Request.Header.ContentType()

	if bytes.HasPrefix(contentType, []byte("application/json")) {
		var req CheckRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return "", err
		}
		return req.Text, nil
	}

	if bytes.HasPrefix(body, []byte("text=")) {
		return url.QueryUnescape(string(body[len("text="):]))
	}

	return string(body), nil
}

// roundPercentage rounds to one decimal place for display.
func roundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}

// writeJSONResponse writes a JSON response to the context
func (h *Handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(response)
}
