package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/curiogoods/catalog-api/internal/domain/model"
)

// SSEStream relays pipeline progress events to one HTTP client as
// Server-Sent Events. It implements branding.EventSink.
//
// The stream enforces the progress-channel contract on the wire: once a
// terminal event (complete or error) has been written, every later emit is
// dropped. Write failures mark the stream broken; the pipeline keeps running
// to completion regardless, the client just stops hearing about it.
type SSEStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	broken bool
}

// NewSSEStream prepares w for event streaming and returns the stream.
// It writes the SSE response headers immediately; the caller must not touch
// the response writer afterwards. Returns an error if w does not support
// flushing, which streaming requires.
func NewSSEStream(w http.ResponseWriter, logger *slog.Logger) (*SSEStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	if logger == nil {
		logger = slog.Default()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEStream{w: w, flusher: flusher, logger: logger}, nil
}

// Emit writes one progress event to the client and flushes it. Events
// arriving after the terminal event are discarded.
func (s *SSEStream) Emit(ctx context.Context, event model.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.broken {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.ErrorContext(ctx, "marshal progress event failed",
			"run_id", event.RunID, "type", event.Type, "error", err)
		return
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event.Type, payload); err != nil {
		// Client gone. Stop writing but let the run finish server-side.
		s.broken = true
		s.logger.WarnContext(ctx, "progress stream write failed",
			"run_id", event.RunID, "error", err)
		return
	}
	s.flusher.Flush()

	if event.Type.Terminal() {
		s.closed = true
	}
}

// Closed reports whether a terminal event has been written.
func (s *SSEStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
