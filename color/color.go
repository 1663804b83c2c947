// Package color maps the roles of CLI output to terminal colors.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI code or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Status colors for transfer and server state.
var (
	Success  = New("2")
	Failure  = New("1")
	Warning  = New("3")
	Pending  = New("4")
	Transfer = New("6")
	Skipped  = New("#808080")
)

// Accents for names, headings and prompts.
var (
	Accent  = New("5")
	Heading = New("13")
	Tagline = New("9")
	Prompt  = New("#ffb703")
)

// Badge colors for the manifest title banner.
var (
	BadgeFg = New("230")
	BadgeBg = New("62")
)
