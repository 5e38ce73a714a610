// Package service provides the application service that owns the catalog,
// the highlighter and the session store, and implements the dependencies
// required by the HTTP adapters.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okian/explorer/internal/adapters/highlight"
	"github.com/okian/explorer/internal/adapters/repository"
	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
	"github.com/okian/explorer/pkg/logger"
	"github.com/okian/explorer/pkg/metrics"
)

// ErrNotStarted is returned by operations on a service that is not running.
var ErrNotStarted = errors.New("service not started")

// Transition names, used for logging and metrics.
const (
	OpSelect   = "select"
	OpPrevious = "previous"
	OpNext     = "next"
	OpToggle   = "toggle_code"
)

// Session is a newly created explorer session.
type Session struct {
	ID   string        `json:"session_id"`
	View explorer.View `json:"view"`
}

// Service implements the API dependencies for the endpoint explorer.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog     *catalog.Catalog
	highlighter explorer.Highlighter
	store       repository.Store

	// Configuration
	maxSessions    int
	sessionTTL     time.Duration
	sweepInterval  time.Duration
	highlightStyle string
	lineNumbers    bool
	cacheSize      int

	// State
	started bool
	cancel  context.CancelFunc

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:        catalog.Default(),
		maxSessions:    10_000,
		sessionTTL:     30 * time.Minute,
		sweepInterval:  time.Minute,
		highlightStyle: "monokai",
		cacheSize:      64,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the highlighter and the session store.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting explorer service...")

	if s.highlighter == nil {
		s.highlighter = highlight.NewHTML(
			highlight.WithStyle(s.highlightStyle),
			highlight.WithLineNumbers(s.lineNumbers),
			highlight.WithCacheSize(s.cacheSize),
		)
	}

	storeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.store = repository.NewMemoryStore(storeCtx,
		repository.WithMaxSessions(s.maxSessions),
		repository.WithIdleTTL(s.sessionTTL),
		repository.WithSweepInterval(s.sweepInterval),
		repository.WithFactory(s.newExplorer),
	)

	s.started = true
	s.logger.Info(ctx, "explorer service started",
		logger.Int("endpoints", s.catalog.Len()),
		logger.Int("maxSessions", s.maxSessions),
		logger.String("sessionTTL", s.sessionTTL.String()),
	)

	return nil
}

// Stop shuts the service down and drops every session.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping explorer service...")

	if s.store != nil {
		_ = s.store.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}

	s.started = false
	s.logger.Info(context.Background(), "explorer service stopped")
}

// newExplorer builds a session's explorer wired to the shared highlighter.
func (s *Service) newExplorer() *explorer.Explorer {
	return explorer.New(s.catalog, explorer.WithHighlighter(s.highlighter))
}

// running returns the store if the service is started.
func (s *Service) running() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Catalog returns every descriptor in order.
func (s *Service) Catalog(_ context.Context) []catalog.Descriptor {
	return s.catalog.All()
}

// NewSession creates an explorer in its initial state.
func (s *Service) NewSession(ctx context.Context) (Session, error) {
	store, err := s.running()
	if err != nil {
		return Session{}, err
	}
	sess, err := store.Create(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to create session", logger.Error(err))
		return Session{}, err
	}
	s.logger.Debug(ctx, "session created", logger.String("session", sess.ID))
	return Session{ID: sess.ID, View: sess.View}, nil
}

// RestoreSession creates a session rehydrated from a saved State. The
// selection is clamped into the catalog.
func (s *Service) RestoreSession(ctx context.Context, st explorer.State) (Session, error) {
	sess, err := s.NewSession(ctx)
	if err != nil {
		return Session{}, err
	}
	store, err := s.running()
	if err != nil {
		return Session{}, err
	}
	view, err := store.Update(ctx, sess.ID, func(e *explorer.Explorer) error {
		e.Restore(st)
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	s.logger.Debug(ctx, "session restored",
		logger.String("session", sess.ID),
		logger.Int("selected", view.Index),
		logger.Bool("codeVisible", view.CodeVisible),
	)
	return Session{ID: sess.ID, View: view}, nil
}

// View returns the current view of a session.
func (s *Service) View(ctx context.Context, id string) (explorer.View, error) {
	store, err := s.running()
	if err != nil {
		return explorer.View{}, err
	}
	return store.Get(ctx, id)
}

// EndSession removes a session.
func (s *Service) EndSession(ctx context.Context, id string) error {
	store, err := s.running()
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debug(ctx, "session ended", logger.String("session", id))
	return nil
}

// SelectDirect selects entry i of a session.
func (s *Service) SelectDirect(ctx context.Context, id string, i int) (explorer.View, error) {
	return s.transition(ctx, id, OpSelect, func(e *explorer.Explorer) error {
		return e.SelectDirect(i)
	})
}

// SelectPrevious moves a session one entry back.
func (s *Service) SelectPrevious(ctx context.Context, id string) (explorer.View, error) {
	return s.transition(ctx, id, OpPrevious, func(e *explorer.Explorer) error {
		e.SelectPrevious()
		return nil
	})
}

// SelectNext moves a session one entry forward.
func (s *Service) SelectNext(ctx context.Context, id string) (explorer.View, error) {
	return s.transition(ctx, id, OpNext, func(e *explorer.Explorer) error {
		e.SelectNext()
		return nil
	})
}

// ToggleCode flips a session's code visibility.
func (s *Service) ToggleCode(ctx context.Context, id string) (explorer.View, error) {
	return s.transition(ctx, id, OpToggle, func(e *explorer.Explorer) error {
		e.ToggleCodeVisibility()
		return nil
	})
}

func (s *Service) transition(ctx context.Context, id, op string, fn func(*explorer.Explorer) error) (explorer.View, error) {
	store, err := s.running()
	if err != nil {
		return explorer.View{}, err
	}
	log := s.logger.With(logger.String("session", id), logger.String("op", op))
	view, err := store.Update(ctx, id, fn)
	if err != nil {
		log.Debug(ctx, "transition rejected", logger.Error(err))
		return explorer.View{}, err
	}
	metrics.RecordTransition(op)
	log.Debug(ctx, "transition applied",
		logger.Int("selected", view.Index),
		logger.Bool("codeVisible", view.CodeVisible),
	)
	if view.HighlightErr != nil {
		log.Warn(ctx, "highlight failed; serving plain code", logger.Error(view.HighlightErr))
	}
	return view, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"endpoints":   s.catalog.Len(),
		"maxSessions": s.maxSessions,
	}

	if s.started {
		sessions := s.store.Count(context.Background())
		stats["sessions"] = sessions
		metrics.UpdateSessionsActive(sessions)
	}

	return stats
}
