package listview

import "github.com/charmbracelet/lipgloss"

// Styles controls the list chrome. Row content styling belongs to the
// caller's render function.
type Styles struct {
	ScrollTrack lipgloss.Style
	ScrollThumb lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the default list chrome.
func DefaultStyles() Styles {
	return Styles{
		ScrollTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ScrollThumb: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}
