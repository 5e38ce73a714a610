package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/explorer"
)

// SessionsHandler handles explorer session requests.
type SessionsHandler struct {
	deps SessionDependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps SessionDependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

type selectRequest struct {
	Index *int `json:"index"`
}

func (r selectRequest) validate() error {
	if r.Index == nil {
		return errors.New("missing index")
	}
	return nil
}

// restoreRequest is the optional body of POST /api/sessions.
type restoreRequest struct {
	Selected    *int `json:"selected"`
	CodeVisible bool `json:"code_visible"`
}

func (r restoreRequest) state() (explorer.State, bool) {
	if r.Selected == nil && !r.CodeVisible {
		return explorer.State{}, false
	}
	st := explorer.State{CodeVisible: r.CodeVisible}
	if r.Selected != nil {
		st.Selected = *r.Selected
	}
	return st, true
}

// HandleCreate handles POST /api/sessions requests. A body carrying a saved
// state opens the session at that state.
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_session"
	var req restoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var (
		sess service.Session
		err  error
	)
	if st, ok := req.state(); ok {
		sess, err = h.deps.RestoreSession(r.Context(), st)
	} else {
		sess, err = h.deps.NewSession(r.Context())
	}
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.Header().Set("Location", "/api/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, sess)
}

// HandleGet handles GET /api/sessions/{id} requests.
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.get_session", h.deps.View)
}

// HandleDelete handles DELETE /api/sessions/{id} requests.
func (h *SessionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_session"
	id, ok := sessionID(w, r, op)
	if !ok {
		return
	}
	if err := h.deps.EndSession(r.Context(), id); err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSelect handles POST /api/sessions/{id}/select requests.
func (h *SessionsHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	const op = "api.select"
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	h.respond(w, r, op, func(ctx context.Context, id string) (explorer.View, error) {
		return h.deps.SelectDirect(ctx, id, *req.Index)
	})
}

// HandlePrevious handles POST /api/sessions/{id}/previous requests.
func (h *SessionsHandler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.previous", h.deps.SelectPrevious)
}

// HandleNext handles POST /api/sessions/{id}/next requests.
func (h *SessionsHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.next", h.deps.SelectNext)
}

// HandleToggleCode handles POST /api/sessions/{id}/code/toggle requests.
func (h *SessionsHandler) HandleToggleCode(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "api.toggle_code", h.deps.ToggleCode)
}

func (h *SessionsHandler) respond(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, string) (explorer.View, error)) {
	id, ok := sessionID(w, r, op)
	if !ok {
		return
	}
	view, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func sessionID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return "", false
	}
	return id, true
}
