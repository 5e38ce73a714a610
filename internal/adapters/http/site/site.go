// Package site serves the server-rendered endpoint explorer page.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/okian/explorer/internal/adapters/http/api"
	"github.com/okian/explorer/internal/adapters/repository"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
	"github.com/okian/explorer/pkg/logger"
)

// CookieName holds the session id of a browser.
const CookieName = "explorer_session"

// PageTitle is the heading of the page.
const PageTitle = "Les Endpoints API en JavaScript"

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Handler renders the explorer for browser sessions tracked by cookie.
type Handler struct {
	deps   api.SessionDependencies
	logger logger.Logger
	secure bool
}

// NewHandler creates a site handler over deps.
func NewHandler(deps api.SessionDependencies, opts ...Option) *Handler {
	h := &Handler{deps: deps, logger: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register attaches the page, the form actions and the stylesheet to mux.
func (h *Handler) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("GET /{$}", api.MetricsMiddleware(h.HandleIndex, "site_index"))
	mux.HandleFunc("POST /select/{index}", api.MetricsMiddleware(h.HandleSelect, "site_select"))
	mux.HandleFunc("POST /previous", api.MetricsMiddleware(h.action(h.deps.SelectPrevious), "site_previous"))
	mux.HandleFunc("POST /next", api.MetricsMiddleware(h.action(h.deps.SelectNext), "site_next"))
	mux.HandleFunc("POST /toggle", api.MetricsMiddleware(h.action(h.deps.ToggleCode), "site_toggle"))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(Static())))
}

type page struct {
	Title string
	View  explorer.View
	// Highlighted is the trusted formatter output; empty means render
	// View.Code as escaped text.
	Highlighted template.HTML
}

// HandleIndex handles GET / requests.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	_, view, err := h.session(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	p := page{Title: PageTitle, View: view}
	if view.CodeVisible && view.HighlightErr == nil && view.Highlighted != "" {
		p.Highlighted = template.HTML(view.Highlighted) // formatter output escapes its input
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrRender, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// HandleSelect handles POST /select/{index} requests.
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid index", http.StatusBadRequest)
		return
	}
	h.action(func(ctx context.Context, id string) (explorer.View, error) {
		return h.deps.SelectDirect(ctx, id, i)
	})(w, r)
}

// action applies fn to the browser's session and redirects back to the page.
func (h *Handler) action(fn func(context.Context, string) (explorer.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _, err := h.session(w, r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if _, err := fn(r.Context(), id); err != nil {
			h.fail(w, r, err)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// session resolves the cookie to a live session, creating one when the
// cookie is missing or its session has expired.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, explorer.View, error) {
	ctx := r.Context()
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		view, err := h.deps.View(ctx, c.Value)
		if err == nil {
			return c.Value, view, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return "", explorer.View{}, err
		}
	}

	sess, err := h.deps.NewSession(ctx)
	if err != nil {
		return "", explorer.View{}, fmt.Errorf("%w: %w", ErrSession, err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess.ID, sess.View, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrIndexOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotStarted),
		errors.Is(err, repository.ErrClosed),
		errors.Is(err, repository.ErrStoreFull):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "site request failed",
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Error(err),
		)
	}
	http.Error(w, http.StatusText(status), status)
}
