// Package color holds the terminal palette used by the CLI and the startup banner.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// Brand colors, matching the embed player theme.
var (
	Crimson  = New("#B20710")
	Midnight = New("#170000")
	Gray     = New("#808080")
)
