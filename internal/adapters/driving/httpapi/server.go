// Package httpapi serves the entrypoint registry over REST.
//
// Routes:
//
//	GET  /health
//	GET  /v1/entrypoints
//	POST /v1/entrypoints/{name}
//
// A successful call answers {"output": ...} with the price tier in the
// X-Price header. Failures answer {"error": "..."}.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/logger"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

// Registry is the subset of the entrypoint registry the API needs.
type Registry interface {
	List() []registry.Descriptor
	Invoke(ctx context.Context, name string, input json.RawMessage) (*registry.Result, error)
}

// Server is the REST API.
type Server struct {
	registry Registry
	router   *mux.Router
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer builds the router. When mcpHandler is non-nil it is mounted at /mcp.
func NewServer(reg Registry, mcpHandler http.Handler) *Server {
	s := &Server{
		registry: reg,
		router:   mux.NewRouter(),
	}

	api := s.router.NewRoute().Subrouter()
	api.Use(contentTypeApplicationJSONMiddleware)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/v1/entrypoints", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/v1/entrypoints/{name}", s.handleInvoke).Methods(http.MethodPost)

	if mcpHandler != nil {
		s.router.PathPrefix("/mcp").Handler(mcpHandler)
	}

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		jsonErr(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Handler:           s,
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("http: listening on %s", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResp(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	jsonResp(w, http.StatusOK, s.registry.List())
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		jsonErr(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	res, err := s.registry.Invoke(r.Context(), name, body)
	if err != nil {
		code := statusFor(err)
		if code >= http.StatusInternalServerError {
			logger.Error("http: %s: %v", name, err)
		}
		jsonErr(w, code, err.Error())
		return
	}

	w.Header().Set("X-Price", res.Price.Dollars())
	jsonResp(w, http.StatusOK, res)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownEntrypoint):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func contentTypeApplicationJSONMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func jsonResp(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
