// Package overlay draws one rendered block over another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center draws box over base, centered in a width by height area. The
// box hides what lies under it; base lines are padded to width first.
// Styled text is cut on display columns.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, line := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	for i, line := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		if w := ansi.StringWidth(line); w < boxWidth {
			line += strings.Repeat(" ", boxWidth-w)
		}
		result := ansi.Cut(under, 0, left) + line
		if end := left + boxWidth; end < width {
			result += ansi.Cut(under, end, width)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
