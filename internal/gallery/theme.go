package gallery

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used around rendered tables. Table text
// itself is never styled.
type Theme struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// DefaultTheme returns the coloured theme.
func DefaultTheme() *Theme {
	return &Theme{
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Bright blue
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// PlainTheme returns a theme that adds no escape sequences.
func PlainTheme() *Theme {
	return &Theme{
		Heading: lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

// ThemeFor picks DefaultTheme or PlainTheme.
func ThemeFor(color bool) *Theme {
	if color {
		return DefaultTheme()
	}
	return PlainTheme()
}
