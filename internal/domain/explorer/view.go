package explorer

import "github.com/okian/explorer/internal/domain/catalog"

// Entry is one carousel node.
type Entry struct {
	Index    int            `json:"index"`
	Method   catalog.Method `json:"method"`
	Path     string         `json:"path"`
	Color    string         `json:"color"`
	Icon     string         `json:"icon"`
	Selected bool           `json:"selected"`
	// Last marks the final node, after which no connector is drawn.
	Last bool `json:"last"`
}

// View is the derived, read-only projection of (catalog, selection,
// visibility) consumed by renderers.
type View struct {
	Entries     []Entry            `json:"entries"`
	Index       int                `json:"index"`
	Total       int                `json:"total"`
	Current     catalog.Descriptor `json:"-"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CanPrevious bool               `json:"can_previous"`
	CanNext     bool               `json:"can_next"`
	CodeVisible bool               `json:"code_visible"`
	ToggleLabel string             `json:"toggle_label"`
	Language    string             `json:"language,omitempty"`
	Code        string             `json:"code,omitempty"`
	Highlighted string             `json:"highlighted,omitempty"`
	// HighlightErr is set when the highlighter failed; renderers fall back
	// to Code.
	HighlightErr error `json:"-"`
}

// View derives the current view.
func (e *Explorer) View() View {
	n := e.cat.Len()
	entries := make([]Entry, n)
	for i, d := range e.cat.All() {
		entries[i] = Entry{
			Index:    i,
			Method:   d.Method,
			Path:     d.Path,
			Color:    d.Method.Color(),
			Icon:     d.Method.Icon(),
			Selected: i == e.selected,
			Last:     i == n-1,
		}
	}
	cur := e.Current()
	v := View{
		Entries:     entries,
		Index:       e.selected,
		Total:       n,
		Current:     cur,
		Title:       cur.Title(),
		Description: cur.Description,
		CanPrevious: e.CanSelectPrevious(),
		CanNext:     e.CanSelectNext(),
		CodeVisible: e.visible,
		ToggleLabel: ShowCodeLabel,
	}
	if e.visible {
		v.ToggleLabel = HideCodeLabel
		v.Language = e.language
		v.Code = cur.SampleCode
		v.Highlighted = e.highlighted
		v.HighlightErr = e.highlightErr
	}
	return v
}
