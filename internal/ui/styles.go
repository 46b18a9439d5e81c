package ui

import "github.com/charmbracelet/lipgloss"

// SectionStyle renders demo section headers.
func SectionStyle() lipgloss.Style {
	p := CurrentPalette()
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.Dim)
}

// SuccessStyle renders success banners.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentPalette().Success)
}

// ErrorStyle renders failure banners.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentPalette().Error)
}

// DimStyle renders secondary text.
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentPalette().Dim)
}
