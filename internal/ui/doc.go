// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI color helpers for plain CLI output and
// lipgloss styles for section headers and the terminal form.
package ui
