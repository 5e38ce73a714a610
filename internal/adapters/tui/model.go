// Package tui renders the endpoint explorer in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okian/explorer/internal/domain/explorer"
)

// Title is shown above the carousel.
const Title = "Les Endpoints API en JavaScript"

// ErrRun is returned when the terminal program fails.
var ErrRun = errors.New("tui run failed")

// Model is the bubbletea model over one explorer.
type Model struct {
	explorer *explorer.Explorer
	styles   styles
	status   string
	quitting bool
}

// New creates a model driving e.
func New(e *explorer.Explorer) Model {
	if e == nil {
		panic("explorer is nil")
	}
	return Model{explorer: e, styles: defaultStyles()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.explorer.SelectPrevious()
	case "right", "l":
		m.explorer.SelectNext()
	case "c", " ":
		m.explorer.ToggleCodeVisibility()
	default:
		if n, err := strconv.Atoi(s); err == nil && len(s) == 1 {
			if err := m.explorer.SelectDirect(n - 1); err != nil {
				m.status = fmt.Sprintf("aucun endpoint %d", n)
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	v := m.explorer.View()

	var b strings.Builder
	b.WriteString(s.Title.Render(Title))
	b.WriteString("\n")
	b.WriteString(m.renderFlow(v))
	b.WriteString("\n\n")
	b.WriteString(s.Panel.Render(m.renderPanel(v)))
	b.WriteString("\n\n")
	b.WriteString(m.renderNavigation(v))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(s.Error.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(s.Dim.Render(fmt.Sprintf("←/h précédent • →/l suivant • 1-%d choisir • c code • q quitter", v.Total)))
	return b.String()
}

func (m Model) renderFlow(v explorer.View) string {
	s := m.styles
	cols := make([]string, 0, 2*len(v.Entries))
	for _, e := range v.Entries {
		badge := s.badge(e.Color).Render(e.Method.Glyph())
		label := s.Label.Render(string(e.Method))
		if e.Selected {
			badge = s.Selected.Inherit(s.badge(e.Color)).Render("[" + e.Method.Glyph() + "]")
			label = s.Selected.Render(string(e.Method))
		}
		node := lipgloss.JoinVertical(lipgloss.Center, badge, label, s.Path.Render(e.Path))
		cols = append(cols, node)
		if !e.Last {
			arrow := s.Arrow
			if e.Selected {
				arrow = s.Active
			}
			cols = append(cols, arrow.Render("  →  "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cols...)
}

func (m Model) renderPanel(v explorer.View) string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Heading.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(s.Path.Render(v.Description))
	b.WriteString("\n\n")
	b.WriteString(s.Button.Render("[c] " + v.ToggleLabel))
	if v.CodeVisible {
		code := v.Highlighted
		if code == "" || v.HighlightErr != nil {
			code = v.Code
		}
		b.WriteString("\n")
		b.WriteString(s.Code.Render(code))
	}
	return b.String()
}

func (m Model) renderNavigation(v explorer.View) string {
	s := m.styles
	prev, next := s.Button, s.Button
	if !v.CanPrevious {
		prev = s.Dim
	}
	if !v.CanNext {
		next = s.Dim
	}
	return prev.Render("← Précédent") + "    " + next.Render("Suivant →")
}

// Run drives e interactively until the user quits or ctx is cancelled.
func Run(ctx context.Context, e *explorer.Explorer, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(New(e), opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrRun, err)
	}
	return nil
}
