package explorer

// Option applies a configuration option to an Explorer.
type Option func(*Explorer)

// WithHighlighter installs the collaborator invoked after every state change
// while code is visible.
func WithHighlighter(h Highlighter) Option {
	return func(e *Explorer) {
		e.highlighter = h
	}
}

// WithObserver registers fn to be called with the new State after every
// state change.
func WithObserver(fn func(State)) Option {
	return func(e *Explorer) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

// WithLanguage overrides the language tag passed to the highlighter.
func WithLanguage(language string) Option {
	return func(e *Explorer) {
		if language != "" {
			e.language = language
		}
	}
}
