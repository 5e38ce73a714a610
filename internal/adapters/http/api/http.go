// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/explorer/internal/adapters/repository"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CatalogProvider
	SessionDependencies
}

// CatalogProvider exposes the static catalog.
type CatalogProvider interface {
	Catalog(ctx context.Context) []catalog.Descriptor
}

// SessionDependencies exposes explorer sessions and their transitions.
type SessionDependencies interface {
	NewSession(ctx context.Context) (service.Session, error)
	RestoreSession(ctx context.Context, st explorer.State) (service.Session, error)
	View(ctx context.Context, id string) (explorer.View, error)
	EndSession(ctx context.Context, id string) error
	SelectDirect(ctx context.Context, id string, i int) (explorer.View, error)
	SelectPrevious(ctx context.Context, id string) (explorer.View, error)
	SelectNext(ctx context.Context, id string) (explorer.View, error)
	ToggleCode(ctx context.Context, id string) (explorer.View, error)
}

// Server wires HTTP routes for the explorer API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	catalogHandler  *CatalogHandler
	sessionsHandler *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		catalogHandler:  NewCatalogHandler(deps),
		sessionsHandler: NewSessionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /api/catalog", MetricsMiddleware(s.catalogHandler.HandleGetCatalog, "catalog"))

	h := s.sessionsHandler
	mux.HandleFunc("POST /api/sessions", MetricsMiddleware(h.HandleCreate, "session_create"))
	mux.HandleFunc("GET /api/sessions/{id}", MetricsMiddleware(h.HandleGet, "session_get"))
	mux.HandleFunc("DELETE /api/sessions/{id}", MetricsMiddleware(h.HandleDelete, "session_delete"))
	mux.HandleFunc("POST /api/sessions/{id}/select", MetricsMiddleware(h.HandleSelect, "session_select"))
	mux.HandleFunc("POST /api/sessions/{id}/previous", MetricsMiddleware(h.HandlePrevious, "session_previous"))
	mux.HandleFunc("POST /api/sessions/{id}/next", MetricsMiddleware(h.HandleNext, "session_next"))
	mux.HandleFunc("POST /api/sessions/{id}/code/toggle", MetricsMiddleware(h.HandleToggleCode, "session_toggle_code"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates upstream sentinel errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, catalog.ErrIndexOutOfRange):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrNotStarted),
		errors.Is(err, repository.ErrClosed),
		errors.Is(err, repository.ErrStoreFull):
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
