package tui

import "github.com/charmbracelet/lipgloss"

// Color constants
const (
	ColorPrimary = "39"  // Blue
	ColorSuccess = "42"  // Green
	ColorWarning = "214" // Orange
	ColorMuted   = "245" // Gray
	ColorCursor  = "212" // Pink
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title  lipgloss.Style
	Alive  lipgloss.Style
	Frozen lipgloss.Style
	Dead   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
	Loop   lipgloss.Style
	Error  lipgloss.Style
	Board  lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimary)),
		Alive:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
		Frozen: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
		Dead:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Cursor: lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color(ColorCursor)),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Loop:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)),
	}
}
