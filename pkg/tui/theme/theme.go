package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Grid   GridTheme
	Footer FooterTheme
}

// GridTheme styles the scrolling week grid.
type GridTheme struct {
	WeekdayHeader lipgloss.Style
	Day           lipgloss.Style
	Weekend       lipgloss.Style
	Today         lipgloss.Style
	MonthLabel    lipgloss.Style
	MonthRule     lipgloss.Style
	MonthStart    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	day := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	return Theme{
		Grid: GridTheme{
			WeekdayHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:           day,
			Weekend:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Today:         lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			MonthLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
			MonthRule:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			MonthStart:    day.Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
