package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/sampler/internal/ui"
)

// Style variables for the form, initialized from the ui palette.
var (
	titleStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	helpStyle    lipgloss.Style
	bannerStyle  lipgloss.Style
)

func init() {
	initStyles()
}

// initStyles rebuilds the styles from the current palette.
// Called at package init and again from Run after InitTheme has been invoked.
func initStyles() {
	p := ui.CurrentPalette()

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(p.Success)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	helpStyle = lipgloss.NewStyle().Foreground(p.Dim)
	bannerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Dim).
		Padding(0, 1).
		MarginTop(1)
}
