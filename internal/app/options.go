package service

import (
	"time"

	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
	"github.com/okian/explorer/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog replaces the bundled catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil && c.Len() > 0 {
			s.catalog = c
		}
	}
}

// WithHighlighter replaces the chroma HTML highlighter.
func WithHighlighter(h explorer.Highlighter) Option {
	return func(s *Service) {
		if h != nil {
			s.highlighter = h
		}
	}
}

// WithMaxSessions bounds live sessions; zero means unbounded.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxSessions = n
		}
	}
}

// WithSessionTTL sets the idle TTL of sessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithSweepInterval sets how often idle sessions are swept.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// WithHighlightStyle selects the chroma style of the default highlighter.
func WithHighlightStyle(style string) Option {
	return func(s *Service) {
		if style != "" {
			s.highlightStyle = style
		}
	}
}

// WithLineNumbers enables line numbers in the default highlighter.
func WithLineNumbers(enabled bool) Option {
	return func(s *Service) {
		s.lineNumbers = enabled
	}
}

// WithHighlightCacheSize bounds the default highlighter's cache.
func WithHighlightCacheSize(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.cacheSize = size
		}
	}
}
