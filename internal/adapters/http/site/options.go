package site

import "github.com/okian/explorer/pkg/logger"

// Option configures the site handler.
type Option func(*Handler)

// WithLogger sets the logger used for request failures.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithSecureCookie marks the session cookie Secure, for TLS deployments.
func WithSecureCookie(secure bool) Option {
	return func(h *Handler) {
		h.secure = secure
	}
}
