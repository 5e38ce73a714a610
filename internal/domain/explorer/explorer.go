// Package explorer implements the endpoint carousel state machine: a selection
// pointer that always stays inside the catalog, a code visibility flag, and the
// derived view rendered by the adapters.
package explorer

import (
	"fmt"

	"github.com/okian/explorer/internal/domain/catalog"
)

// Display strings for the code toggle control.
const (
	ShowCodeLabel = "Voir le code"
	HideCodeLabel = "Masquer le code"
)

// Highlighter turns source text into annotated output for a language tag.
// Implementations must be pure: the same input yields the same output.
type Highlighter interface {
	Highlight(source, language string) (string, error)
}

// State is the pair of cells owned by an Explorer.
type State struct {
	Selected    int  `json:"selected"`
	CodeVisible bool `json:"code_visible"`
}

// Explorer owns one selection cell and one visibility cell over an immutable
// catalog. It is not safe for concurrent use; callers serialise access.
type Explorer struct {
	cat      *catalog.Catalog
	selected int
	visible  bool

	language    string
	highlighter Highlighter
	observers   []func(State)

	highlighted  string
	highlightErr error
}

// New creates an Explorer in its initial state: first entry selected, code
// hidden.
func New(cat *catalog.Catalog, opts ...Option) *Explorer {
	if cat == nil || cat.Len() == 0 {
		panic("explorer: catalog must not be empty")
	}
	e := &Explorer{
		cat:      cat,
		language: catalog.Language,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the explorer walks.
func (e *Explorer) Catalog() *catalog.Catalog { return e.cat }

// State returns a copy of the current cells.
func (e *Explorer) State() State {
	return State{Selected: e.selected, CodeVisible: e.visible}
}

// Selected returns the selected index, always in [0, Len).
func (e *Explorer) Selected() int { return e.selected }

// CodeVisible reports whether the sample code panel is shown.
func (e *Explorer) CodeVisible() bool { return e.visible }

// Current returns the selected descriptor.
func (e *Explorer) Current() catalog.Descriptor {
	d, _ := e.cat.At(e.selected)
	return d
}

// CanSelectPrevious reports whether the previous control is enabled.
func (e *Explorer) CanSelectPrevious() bool { return e.selected > 0 }

// CanSelectNext reports whether the next control is enabled.
func (e *Explorer) CanSelectNext() bool { return e.selected < e.cat.Len()-1 }

// SelectDirect selects entry i. An out-of-range index leaves the state
// untouched and returns catalog.ErrIndexOutOfRange.
func (e *Explorer) SelectDirect(i int) error {
	if !e.cat.Contains(i) {
		return fmt.Errorf("select %d: %w", i, catalog.ErrIndexOutOfRange)
	}
	e.apply(i, e.visible)
	return nil
}

// SelectPrevious moves one entry back. No-op on the first entry.
func (e *Explorer) SelectPrevious() {
	e.apply(max(0, e.selected-1), e.visible)
}

// SelectNext moves one entry forward. No-op on the last entry.
func (e *Explorer) SelectNext() {
	e.apply(min(e.cat.Len()-1, e.selected+1), e.visible)
}

// ToggleCodeVisibility flips the visibility cell.
func (e *Explorer) ToggleCodeVisibility() {
	e.apply(e.selected, !e.visible)
}

// Restore sets both cells at once, clamping the selection into range. It is
// used when rebuilding an explorer from a saved State.
func (e *Explorer) Restore(s State) {
	sel := min(max(0, s.Selected), e.cat.Len()-1)
	e.apply(sel, s.CodeVisible)
}

// apply commits a transition and, if anything changed, notifies observers
// once the new state is in place.
func (e *Explorer) apply(selected int, visible bool) {
	if selected == e.selected && visible == e.visible {
		return
	}
	e.selected = selected
	e.visible = visible
	e.refresh()
	st := e.State()
	for _, fn := range e.observers {
		fn(st)
	}
}

// refresh re-runs the highlighting collaborator for the settled state.
func (e *Explorer) refresh() {
	if !e.visible {
		e.highlighted, e.highlightErr = "", nil
		return
	}
	if e.highlighter == nil {
		e.highlighted, e.highlightErr = "", nil
		return
	}
	e.highlighted, e.highlightErr = e.highlighter.Highlight(e.Current().SampleCode, e.language)
}
