package highlight

// Option applies a configuration option to a Highlighter.
type Option func(*Highlighter)

// WithStyle selects the chroma style by name. Unknown names fall back to
// chroma's default style.
func WithStyle(name string) Option {
	return func(h *Highlighter) {
		if name != "" {
			h.styleName = name
		}
	}
}

// WithLineNumbers enables line numbers. Only the HTML formatter honours it.
func WithLineNumbers(enabled bool) Option {
	return func(h *Highlighter) {
		h.lineNumbers = enabled
	}
}

// WithTabWidth sets the tab expansion width for HTML output.
func WithTabWidth(width int) Option {
	return func(h *Highlighter) {
		if width > 0 {
			h.tabWidth = width
		}
	}
}

// WithCacheSize bounds the memoised results. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(h *Highlighter) {
		if size >= 0 {
			h.cacheSize = size
		}
	}
}
