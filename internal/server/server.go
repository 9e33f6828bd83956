// Package server exposes the audit pipeline over HTTP: one endpoint,
// POST /api/scan, returning the full report JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/audit"
	"github.com/AdityaBargujar/accessibility-analyzer/internal/config"
)

const (
	maxRequestBody = 10 << 20 // uploaded markup can be large, but not unbounded

	// Upper bound on tracked client addresses. When the map fills it is
	// reset wholesale, which briefly refills every client's burst; that
	// beats unbounded growth on a public endpoint.
	maxTrackedClients = 4096
)

type scanRequest struct {
	URL         string `json:"url"`
	FileContent string `json:"fileContent"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	cfg    config.ServerConfig
	runner *audit.Runner

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(cfg config.ServerConfig, runner *audit.Runner) *Server {
	return &Server{
		cfg:      cfg,
		runner:   runner,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scan", s.handleScan)
	return mux
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) limiterFor(remoteAddr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	limiter, ok := s.limiters[host]
	if !ok {
		if len(s.limiters) >= maxTrackedClients {
			s.limiters = make(map[string]*rate.Limiter, maxTrackedClients)
		}
		limiter = rate.NewLimiter(rate.Limit(s.cfg.RateLimit), s.cfg.RateBurst)
		s.limiters[host] = limiter
	}
	return limiter
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !s.limiterFor(r.RemoteAddr).Allow() {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req scanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" && req.FileContent == "" {
		writeError(w, http.StatusBadRequest, "no url or file content provided")
		return
	}
	if req.URL != "" && req.FileContent != "" {
		writeError(w, http.StatusBadRequest, "provide either url or fileContent, not both")
		return
	}

	result, err := s.runner.Run(r.Context(), audit.Input{URL: req.URL, FileContent: req.FileContent})
	if err != nil {
		switch {
		case errors.Is(err, audit.ErrNoInput):
			writeError(w, http.StatusBadRequest, "no url or file content provided")
		case errors.Is(err, context.Canceled):
			// Client went away; nothing useful to write.
		default:
			// Fetch and parse failures get a generic message; details stay
			// on the server side.
			writeError(w, http.StatusBadGateway, "failed to analyze target")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Headers are already gone; nothing to recover here.
		return
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
