// Package relay serves the local playback page. Each request re-resolves the
// stream locator of an episode page and embeds it in a sandboxed frame; the
// handler keeps no state between requests.
package relay

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"nonton/internal/httputil"
)

// WatchPath is the relay endpoint.
const WatchPath = "/watch"

// Plain-text responses. They never include upstream error detail.
const (
	msgMissingURL    = "episode URL not provided"
	msgInvalidURL    = "episode URL is not a valid https URL"
	msgResolveFailed = "failed to resolve stream"
)

// StreamResolver resolves an episode page into an embeddable player URL.
type StreamResolver interface {
	StreamURL(ctx context.Context, episodeURL string) (string, error)
}

// Handler serves GET /watch?url=<episode page>.
type Handler struct {
	resolver StreamResolver
	log      *log.Logger
}

// NewHandler creates a relay handler.
func NewHandler(resolver StreamResolver, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{resolver: resolver, log: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	episodeURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if episodeURL == "" {
		http.Error(w, msgMissingURL, http.StatusBadRequest)
		return
	}
	if err := httputil.ValidateURL(episodeURL); err != nil {
		h.log.Debug("rejected episode URL", "url", episodeURL, "err", err)
		http.Error(w, msgInvalidURL, http.StatusBadRequest)
		return
	}

	streamURL, err := h.resolver.StreamURL(r.Context(), episodeURL)
	if err != nil || streamURL == "" {
		h.log.Warn("stream resolution failed", "url", episodeURL, "err", err)
		http.Error(w, msgResolveFailed, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := renderPlayer(&buf, streamURL); err != nil {
		h.log.Error("rendering player page", "err", err)
		http.Error(w, msgResolveFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// BaseURL returns the origin the relay is reachable at on this machine.
func BaseURL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// WatchURL builds the relay URL that plays an episode page.
func WatchURL(base, episodeURL string) string {
	return strings.TrimRight(base, "/") + WatchPath + "?url=" + url.QueryEscape(episodeURL)
}
