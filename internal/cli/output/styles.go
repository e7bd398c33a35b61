package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
)

// Palette colors. Group colors are the viewer's node border colors.
var (
	colorPrimary = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#888888")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorWarning = lipgloss.Color("#FFC107")
	colorError   = lipgloss.Color("#E53935")

	groupColors = map[callgraph.Group]lipgloss.Color{
		callgraph.GroupOther:  lipgloss.Color("#2B7CE9"),
		callgraph.GroupModule: lipgloss.Color("#FFA500"),
		callgraph.GroupSystem: lipgloss.Color("#666666"),
		callgraph.GroupEntry:  lipgloss.Color("#B71C1C"),
		callgraph.GroupUser:   lipgloss.Color("#4CAF50"),
	}
)

// Styles holds the lipgloss styles used by the CLI.
type Styles struct {
	r *lipgloss.Renderer

	Header   lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Function lipgloss.Style
}

// NewStyles builds styles bound to w. Without a terminal, colors are
// disabled so piped output stays plain.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !isTTY {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		r:        r,
		Header:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		Header2:  r.NewStyle().Bold(true),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(colorMuted),
		Success:  r.NewStyle().Foreground(colorSuccess),
		Warning:  r.NewStyle().Foreground(colorWarning),
		Error:    r.NewStyle().Foreground(colorError),
		Function: r.NewStyle().Foreground(colorPrimary),
	}
}

// Group returns the style for a function group.
func (s *Styles) Group(g callgraph.Group) lipgloss.Style {
	c, ok := groupColors[g]
	if !ok {
		c = groupColors[callgraph.GroupOther]
	}
	return s.r.NewStyle().Foreground(c)
}
