// Package catalog holds the fixed, ordered list of endpoint descriptors the
// explorer walks through.
package catalog

import "fmt"

// Method is the HTTP verb an illustrated endpoint uses.
type Method string

// Supported methods.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }

// Color returns the badge colour used when rendering the method.
func (m Method) Color() string {
	switch m {
	case MethodGet:
		return "green"
	case MethodPost:
		return "blue"
	case MethodPut:
		return "yellow"
	case MethodDelete:
		return "red"
	default:
		return "gray"
	}
}

// Icon returns the icon name shown on the method's carousel node.
func (m Method) Icon() string {
	switch m {
	case MethodGet:
		return "file-search"
	case MethodPost:
		return "plus"
	case MethodPut:
		return "pencil"
	case MethodDelete:
		return "trash"
	default:
		return "send"
	}
}

// Glyph returns a single-character rendering of Icon for text renderers.
func (m Method) Glyph() string {
	switch m {
	case MethodGet:
		return "⌕"
	case MethodPost:
		return "+"
	case MethodPut:
		return "✎"
	case MethodDelete:
		return "✕"
	default:
		return "➤"
	}
}

// Descriptor describes one illustrative API endpoint. SampleCode is opaque
// text, never parsed.
type Descriptor struct {
	Method      Method `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	SampleCode  string `json:"sample_code"`
}

// Title returns "METHOD path".
func (d Descriptor) Title() string {
	return d.Method.String() + " " + d.Path
}

// Catalog is an immutable, non-empty, ordered sequence of descriptors. Order
// defines navigation adjacency.
type Catalog struct {
	entries []Descriptor
}

// New builds a Catalog from descs. The slice is copied.
func New(descs ...Descriptor) (*Catalog, error) {
	if len(descs) == 0 {
		return nil, ErrEmptyCatalog
	}
	entries := make([]Descriptor, len(descs))
	for i, d := range descs {
		if !d.Method.Valid() {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrInvalidMethod, d.Method)
		}
		entries[i] = d
	}
	return &Catalog{entries: entries}, nil
}

// MustNew is like New but panics on error. Intended for static data.
func MustNew(descs ...Descriptor) *Catalog {
	c, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int { return len(c.entries) }

// Contains reports whether i is a valid index.
func (c *Catalog) Contains(i int) bool { return i >= 0 && i < len(c.entries) }

// At returns the descriptor at index i.
func (c *Catalog) At(i int) (Descriptor, error) {
	if !c.Contains(i) {
		return Descriptor{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(c.entries))
	}
	return c.entries[i], nil
}

// All returns a copy of every descriptor in order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}
