// Package highlight adapts chroma to the explorer's highlighting collaborator.
//
// A Highlighter is pure from the caller's point of view: the same
// (source, language) pair always yields the same output, so results are
// memoised in a small LRU cache.
package highlight

import (
	"bytes"
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/okian/explorer/pkg/metrics"
)

// Default configuration constants.
const (
	defaultStyle     = "monokai"
	defaultCacheSize = 64
	defaultTabWidth  = 2
	terminalFormat   = "terminal256"
)

// Highlighter renders source text through a chroma formatter and style.
type Highlighter struct {
	formatter chroma.Formatter
	style     *chroma.Style

	styleName   string
	lineNumbers bool
	tabWidth    int
	cacheSize   int

	mu    sync.Mutex
	order *list.List
	cache map[cacheKey]*list.Element
}

type cacheKey struct {
	language string
	source   string
}

type cacheEntry struct {
	key cacheKey
	out string
}

// NewHTML returns a Highlighter producing a self-contained <pre> block with
// inline styles.
func NewHTML(opts ...Option) *Highlighter {
	h := newHighlighter(opts)
	h.formatter = chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.WithLineNumbers(h.lineNumbers),
		chromahtml.TabWidth(h.tabWidth),
	)
	return h
}

// NewTerminal returns a Highlighter producing 256-colour ANSI output.
func NewTerminal(opts ...Option) *Highlighter {
	h := newHighlighter(opts)
	h.formatter = formatters.Get(terminalFormat)
	return h
}

func newHighlighter(opts []Option) *Highlighter {
	h := &Highlighter{
		styleName: defaultStyle,
		tabWidth:  defaultTabWidth,
		cacheSize: defaultCacheSize,
		order:     list.New(),
		cache:     make(map[cacheKey]*list.Element),
	}
	for _, opt := range opts {
		opt(h)
	}
	// styles.Get falls back to the default style for unknown names.
	h.style = styles.Get(h.styleName)
	return h
}

// Style returns the name of the resolved chroma style.
func (h *Highlighter) Style() string { return h.style.Name }

// Highlight tokenises source with the lexer registered for language (or the
// plain-text fallback) and formats it.
func (h *Highlighter) Highlight(source, language string) (string, error) {
	key := cacheKey{language: language, source: source}
	if out, ok := h.lookup(key); ok {
		metrics.RecordHighlightCacheHit()
		return out, nil
	}

	start := time.Now()
	out, err := h.render(source, language)
	metrics.RecordHighlightLatency(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordHighlightError()
		return "", err
	}
	h.store(key, out)
	return out, nil
}

func (h *Highlighter) render(source, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("%w: tokenise %s: %w", ErrHighlight, language, err)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: format: %w", ErrHighlight, err)
	}
	return buf.String(), nil
}

func (h *Highlighter) lookup(key cacheKey) (string, bool) {
	if h.cacheSize <= 0 {
		return "", false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	el, ok := h.cache[key]
	if !ok {
		return "", false
	}
	h.order.MoveToFront(el)
	return el.Value.(*cacheEntry).out, true
}

func (h *Highlighter) store(key cacheKey, out string) {
	if h.cacheSize <= 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if el, ok := h.cache[key]; ok {
		h.order.MoveToFront(el)
		return
	}
	h.cache[key] = h.order.PushFront(&cacheEntry{key: key, out: out})
	for h.order.Len() > h.cacheSize {
		oldest := h.order.Back()
		h.order.Remove(oldest)
		delete(h.cache, oldest.Value.(*cacheEntry).key)
	}
}

// Cached returns the number of memoised results.
func (h *Highlighter) Cached() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.order.Len()
}
