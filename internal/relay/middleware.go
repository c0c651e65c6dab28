package relay

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to a handler left-to-right (first middleware is outermost).
func Chain(h http.Handler, mw ...Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.status = http.StatusOK
		w.wrote = true
	}
	return w.ResponseWriter.Write(b)
}

// Logger returns middleware that logs each relay request. Failed requests
// log at warn level; the episode URL being played is only logged at debug.
func Logger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			lvl := log.InfoLevel
			if sw.status >= http.StatusBadRequest {
				lvl = log.WarnLevel
			}
			logger.Log(lvl, "relay",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"took", time.Since(start).Round(time.Millisecond),
			)
			if episode := r.URL.Query().Get("url"); episode != "" {
				logger.Debug("relay episode", "url", episode, "status", sw.status)
			}
		})
	}
}

// Recover returns middleware that catches panics and responds with 500.
func Recover(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("relay handler panicked", "path", r.URL.Path, "err", fmt.Sprint(err))
					http.Error(w, msgResolveFailed, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
