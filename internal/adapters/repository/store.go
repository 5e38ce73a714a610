// Package repository keeps explorer sessions in memory, one explorer per
// browser or API client.
package repository

import (
	"context"
	"time"

	"github.com/okian/explorer/internal/domain/explorer"
)

// Session is the read shape of a stored explorer.
type Session struct {
	ID        string
	CreatedAt time.Time
	View      explorer.View
}

// Store provides serialised access to explorer sessions.
type Store interface {
	// Create starts a new explorer in its initial state.
	// Returns ErrStoreFull only when eviction is impossible.
	Create(ctx context.Context) (Session, error)

	// Get returns the current view of a session.
	// Returns ErrNotFound if the session is unknown or expired.
	Get(ctx context.Context, id string) (explorer.View, error)

	// Update runs fn against the session's explorer while holding the store
	// lock, so operations on one session never interleave, and returns the
	// resulting view.
	Update(ctx context.Context, id string, fn func(*explorer.Explorer) error) (explorer.View, error)

	// Delete removes a session. Deleting an unknown id returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) int

	// Close stops background work and drops every session.
	Close() error
}
