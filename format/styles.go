package format

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorKind     = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"} // Blue
	colorToken    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#94A3B8"} // Gray
	colorLiteral  = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"} // Emerald
	colorError    = lipgloss.Color("#EF4444")                                 // Red
	colorPosition = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#64748B"} // Slate
)

// Styles holds the styles used to render a tree. The zero value renders
// plain text.
type Styles struct {
	Kind     lipgloss.Style
	Token    lipgloss.Style
	Literal  lipgloss.Style
	Error    lipgloss.Style
	Position lipgloss.Style
}

// NewStyles returns styles bound to w. With color set, ANSI colors are
// emitted even when w is not a terminal; otherwise no escape codes are
// written at all.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Kind:     r.NewStyle().Foreground(colorKind).Bold(true),
		Token:    r.NewStyle().Foreground(colorToken),
		Literal:  r.NewStyle().Foreground(colorLiteral),
		Error:    r.NewStyle().Foreground(colorError).Bold(true),
		Position: r.NewStyle().Foreground(colorPosition).Faint(true),
	}
}
