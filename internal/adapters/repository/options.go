package repository

import (
	"time"

	"github.com/okian/explorer/internal/domain/explorer"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithFactory sets the constructor used for new sessions.
func WithFactory(factory func() *explorer.Explorer) Option {
	return func(s *MemoryStore) {
		if factory != nil {
			s.factory = factory
		}
	}
}

// WithMaxSessions bounds the number of live sessions. When the bound is hit
// the least recently used session is evicted. Zero means unbounded.
func WithMaxSessions(n int) Option {
	return func(s *MemoryStore) {
		if n >= 0 {
			s.maxSessions = n
		}
	}
}

// WithIdleTTL removes sessions not touched for longer than ttl.
// Zero disables expiry.
func WithIdleTTL(ttl time.Duration) Option {
	return func(s *MemoryStore) {
		if ttl >= 0 {
			s.idleTTL = ttl
		}
	}
}

// WithSweepInterval sets how often the background sweeper runs.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}
