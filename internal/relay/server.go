package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// shutdownTimeout bounds how long in-flight requests may finish on exit.
const shutdownTimeout = 5 * time.Second

// Server is the process-wide relay listener.
type Server struct {
	srv *http.Server
	log *log.Logger
}

// NewServer creates a relay server on addr (e.g. "127.0.0.1:3000") serving h.
func NewServer(addr string, h http.Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("GET "+WatchPath, h)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           Chain(mux, Recover(logger), Logger(logger)),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: logger,
	}
}

// Listen binds the listening socket. It is separate from Serve so callers
// can report bind errors before starting other work.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return ln, nil
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Debug("shutting down relay")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down relay: %w", err)
	}
	return nil
}
