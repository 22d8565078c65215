// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Text styles shared by the renderers.
var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Label   = lipgloss.NewStyle().Foreground(Slate)
	Path    = lipgloss.NewStyle().Bold(true)
	Score   = lipgloss.NewStyle().Foreground(Green)
	Notice  = lipgloss.NewStyle().Foreground(Yellow)
	Failure = lipgloss.NewStyle().Foreground(Red)
	Muted   = lipgloss.NewStyle().Faint(true)
	Heading = lipgloss.NewStyle().Underline(true)
)
