package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the overlay's lipgloss styles.
type Styles struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	Input      lipgloss.Style
	Item       lipgloss.Style
	Selected   lipgloss.Style
	Breadcrumb lipgloss.Style
	Empty      lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default overlay look.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("238")),
		Item:       lipgloss.NewStyle().PaddingLeft(1),
		Selected:   lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")),
		Breadcrumb: lipgloss.NewStyle().Faint(true),
		Empty:      lipgloss.NewStyle().Faint(true).Italic(true).PaddingLeft(1),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
