package repository

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
	"github.com/okian/explorer/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultMaxSessions   = 10_000
	defaultIdleTTL       = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

type session struct {
	id        string
	createdAt time.Time
	lastSeen  time.Time
	explorer  *explorer.Explorer
	elem      *list.Element
}

// MemoryStore is an in-memory Store with LRU eviction and idle expiry.
//
// The recency list keeps the most recently touched session at the front;
// eviction and expiry both work from the back.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	recency  *list.List
	closed   bool

	factory       func() *explorer.Explorer
	maxSessions   int
	idleTTL       time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewMemoryStore creates a store and, when an idle TTL is configured, starts
// a sweeper that runs until ctx is done or Close is called.
func NewMemoryStore(ctx context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sessions:      make(map[string]*session),
		recency:       list.New(),
		maxSessions:   defaultMaxSessions,
		idleTTL:       defaultIdleTTL,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
		stopCh:        make(chan struct{}),
	}
	s.factory = func() *explorer.Explorer { return explorer.New(catalog.Default()) }

	for _, opt := range opts {
		opt(s)
	}

	if s.idleTTL > 0 {
		s.wg.Add(1)
		go s.sweepLoop(ctx)
	}
	return s
}

func (s *MemoryStore) sweepLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Session{}, ErrClosed
	}
	if s.maxSessions > 0 {
		for len(s.sessions) >= s.maxSessions {
			if !s.evictOldestLocked() {
				return Session{}, ErrStoreFull
			}
			metrics.RecordSessionEvicted()
		}
	}

	now := s.now()
	sess := &session{
		id:        uuid.NewString(),
		createdAt: now,
		lastSeen:  now,
		explorer:  s.factory(),
	}
	sess.elem = s.recency.PushFront(sess)
	s.sessions[sess.id] = sess

	metrics.RecordSessionCreated()
	metrics.UpdateSessionsActive(len(s.sessions))

	return Session{ID: sess.id, CreatedAt: sess.createdAt, View: sess.explorer.View()}, nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (explorer.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.touchLocked(id)
	if err != nil {
		return explorer.View{}, err
	}
	return sess.explorer.View(), nil
}

// Update implements Store.
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*explorer.Explorer) error) (explorer.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.touchLocked(id)
	if err != nil {
		return explorer.View{}, err
	}
	if err := fn(sess.explorer); err != nil {
		return explorer.View{}, err
	}
	return sess.explorer.View(), nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.removeLocked(sess)
	metrics.UpdateSessionsActive(len(s.sessions))
	return nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *MemoryStore) Sweep(_ context.Context) int {
	if s.idleTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	removed := 0
	for el := s.recency.Back(); el != nil; {
		sess := el.Value.(*session)
		if !sess.lastSeen.Before(cutoff) {
			break
		}
		prev := el.Prev()
		s.removeLocked(sess)
		removed++
		el = prev
	}
	if removed > 0 {
		metrics.RecordSessionsExpired(removed)
		metrics.UpdateSessionsActive(len(s.sessions))
	}
	return removed
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.sessions = make(map[string]*session)
	s.recency.Init()
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	metrics.UpdateSessionsActive(0)
	return nil
}

// touchLocked looks a session up, treating expired sessions as missing, and
// marks it most recently used.
func (s *MemoryStore) touchLocked(id string) (*session, error) {
	if s.closed {
		return nil, ErrClosed
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	now := s.now()
	if s.idleTTL > 0 && now.Sub(sess.lastSeen) > s.idleTTL {
		s.removeLocked(sess)
		metrics.RecordSessionsExpired(1)
		metrics.UpdateSessionsActive(len(s.sessions))
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.lastSeen = now
	s.recency.MoveToFront(sess.elem)
	return sess, nil
}

func (s *MemoryStore) evictOldestLocked() bool {
	el := s.recency.Back()
	if el == nil {
		return false
	}
	s.removeLocked(el.Value.(*session))
	return true
}

func (s *MemoryStore) removeLocked(sess *session) {
	s.recency.Remove(sess.elem)
	delete(s.sessions, sess.id)
}
