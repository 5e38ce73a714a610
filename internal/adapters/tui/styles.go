package tui

import "github.com/charmbracelet/lipgloss"

// methodColors maps catalog method colors to terminal colors.
var methodColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("#22c55e"),
	"blue":   lipgloss.Color("#3b82f6"),
	"yellow": lipgloss.Color("#eab308"),
	"red":    lipgloss.Color("#ef4444"),
	"gray":   lipgloss.Color("#6b7280"),
}

type styles struct {
	Title    lipgloss.Style
	Badge    lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Path     lipgloss.Style
	Arrow    lipgloss.Style
	Active   lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Dim      lipgloss.Style
	Button   lipgloss.Style
	Code     lipgloss.Style
	Error    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).MarginBottom(1),
		Badge:    lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")),
		Selected: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4b5563")),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#374151")).Padding(1, 2),
		Heading:  lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Faint(true),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Code:     lipgloss.NewStyle().MarginTop(1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
	}
}

func (s styles) badge(color string) lipgloss.Style {
	c, ok := methodColors[color]
	if !ok {
		c = methodColors["gray"]
	}
	return s.Badge.Background(c)
}
