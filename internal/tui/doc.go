// Package tui implements the terminal form: one input field that accepts a
// non-negative integer and renders the Fibonacci sequence up to it, or a
// failure banner.
package tui
