// Package statusline renders the bottom line of the viewer: the status
// text or prompt on the left, the cursor and display flags on the right.
package statusline

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/specview/internal/input"
	"github.com/llehouerou/specview/internal/ui/render"
	"github.com/llehouerou/specview/internal/ui/styles"
)

// cursorGlyph marks the insertion point of an open prompt.
const cursorGlyph = "█"

// Info is what the status line shows.
type Info struct {
	Text  string      // status text as set through the viewport
	State input.State // controller mode, selects the style of Text

	CursorX, CursorY float64
	LogScale         bool
	YAutoScale       bool
	UseNorm          bool
}

// Render draws info in exactly width columns.
func Render(info Info, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	left := render.Sanitize(info.Text)
	switch {
	case info.State == input.Editing:
		left = s.Prompt.Render(left) + cursorGlyph
	case info.State == input.PartialSequence:
		left = s.Pending.Render(left)
	case isError(left):
		left = s.Error.Render(left)
	default:
		left = s.Base.Render(left)
	}

	right := s.Muted.Render(flags(info))
	line := render.Row(left, right, width)
	if ansi.StringWidth(line) > width {
		// The prompt wins over the flags.
		line = ansi.Truncate(left, width, "")
	}
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func isError(text string) bool {
	return strings.HasPrefix(text, "Invalid ") ||
		strings.HasPrefix(text, "Failed ") ||
		strings.HasPrefix(text, "usage: ")
}

func flags(info Info) string {
	parts := []string{
		"x=" + formatFloat(info.CursorX),
		"y=" + formatFloat(info.CursorY),
	}
	if info.LogScale {
		parts = append(parts, "log")
	}
	if info.YAutoScale {
		parts = append(parts, "auto")
	}
	if info.UseNorm {
		parts = append(parts, "norm")
	}
	return strings.Join(parts, " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
