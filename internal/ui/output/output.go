// Package output decides how styled text reaches a writer: the color profile
// in effect and the lipgloss renderer that paints for it.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for human-readable output.
// NO_COLOR forces Ascii; otherwise the profile follows TERM and COLORTERM.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Renderer returns a lipgloss renderer bound to w with a fixed profile, so
// styles never probe the writer for terminal capabilities.
// A nil writer defaults to os.Stderr.
func Renderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	if w == nil {
		w = os.Stderr
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// PaintLines applies s to each non-empty line of text on its own.
// Rendering a multi-line string in one call pads every line to the widest one.
func PaintLines(s lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = s.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
