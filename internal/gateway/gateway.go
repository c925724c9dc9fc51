// Package gateway exposes boards over HTTP/JSON. It validates ids and
// dimensions, resolves boards through the store and maps engine results to
// responses. All simulation happens in package life.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"golboard/internal/config"
	"golboard/internal/store"
	"golboard/pkg/life"
)

var (
	errBadRequest = errors.New("bad request")
	errInvalidID  = fmt.Errorf("%w: id must be a number greater than zero", errBadRequest)
	errInvalidDim = fmt.Errorf("%w: x and y must be numbers greater than zero", errBadRequest)
)

// Server serves the board API.
type Server struct {
	store  store.Store
	cfg    config.Config
	logger *log.Logger
	seeds  func() int64
}

// New returns a Server backed by st. A nil logger discards request logs.
func New(st store.Store, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{store: st, cfg: cfg, logger: logger}
	s.seeds = func() int64 { return time.Now().UnixNano() }
	if cfg.Seed != 0 {
		s.seeds = func() int64 { return cfg.Seed }
	}
	return s
}

// Handler returns the routed, logging HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /boards/{id}", s.createBoard)
	mux.HandleFunc("PUT /boards/{id}", s.uploadBoard)
	mux.HandleFunc("GET /boards/{id}", s.getBoard)
	mux.HandleFunc("GET /boards/{id}/next", s.nextState)
	mux.HandleFunc("GET /boards/{id}/states", s.states)
	mux.HandleFunc("GET /boards/{id}/final", s.finalState)
	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %d %s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Microsecond))
	})
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// parseDim reads an optional positive dimension; def is used when absent.
func parseDim(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errInvalidDim
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type problem struct {
	Error string `json:"error"`
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrExists):
		status = http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, life.ErrInvalidDimensions),
		errors.Is(err, life.ErrInvalidCell),
		errors.Is(err, life.ErrInvalidGenerationCount):
		status = http.StatusBadRequest
	default:
		s.logger.Printf("gateway: %v", err)
	}
	writeJSON(w, status, problem{Error: err.Error()})
}
