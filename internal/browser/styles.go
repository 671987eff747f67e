package browser

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	key     lipgloss.Style
	label   lipgloss.Style
	notice  lipgloss.Style
	invalid lipgloss.Style
}

// newStyles returns the terminal styles. Without color every style renders
// its input unchanged.
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, key: plain, label: plain, notice: plain, invalid: plain}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		key:     lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
