// Package plot draws the visible part of a spectrum as a bar chart made of
// block characters, with count labels on the left and the X range below.
package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/specview/internal/ui"
	"github.com/llehouerou/specview/internal/ui/render"
	"github.com/llehouerou/specview/internal/ui/styles"
)

const (
	labelWidth = 8 // Y label column, including the separating space
	axisHeight = 1 // X range line below the bars
)

// levels are the block glyphs for 0/8 to 8/8 of a cell.
var levels = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Source is the view state the plot reads.
type Source interface {
	XOffset() float64
	XVisibleRegion() float64
	YOffset() float64
	YVisibleRegion() float64
	CursorX() float64
	LogScale() bool
	Sample(columns int) []float64
}

// Model renders a Source in the area set with SetSize.
type Model struct {
	ui.Base
}

// New creates a plot model.
func New() Model {
	return Model{}
}

// Columns returns how many bar columns fit the current width.
func (m Model) Columns() int {
	w, _ := m.Inner(labelWidth, axisHeight)
	return w
}

// Rows returns how many bar rows fit the current height.
func (m Model) Rows() int {
	_, h := m.Inner(labelWidth, axisHeight)
	return h
}

// ColumnAt converts a terminal column inside the plot to an X position.
// ok is false left of the bars.
func (m Model) ColumnAt(src Source, col int) (x float64, ok bool) {
	cols := m.Columns()
	c := col - labelWidth
	if cols == 0 || c < 0 || c >= cols {
		return 0, false
	}
	step := src.XVisibleRegion() / float64(cols)
	return src.XOffset() + (float64(c)+0.5)*step, true
}

// RowAt converts a terminal row inside the plot to a Y position.
func (m Model) RowAt(src Source, row int) (y float64, ok bool) {
	rows := m.Rows()
	if rows == 0 || row < 0 || row >= rows {
		return 0, false
	}
	frac := (float64(rows-row) - 0.5) / float64(rows)
	return src.YOffset() + frac*src.YVisibleRegion(), true
}

// View draws src. markers are X positions drawn as vertical lines.
func (m Model) View(src Source, markers []float64) string {
	cols, rows := m.Columns(), m.Rows()
	if cols == 0 || rows == 0 {
		return ""
	}
	s := styles.T().S()

	heights := m.heights(src, cols, rows)
	overlay := make([]lipgloss.Style, cols)
	glyph := make([]string, cols)
	for _, x := range markers {
		if c, ok := m.columnOf(src, x); ok {
			overlay[c], glyph[c] = s.Marker, "│"
		}
	}
	if c, ok := m.columnOf(src, src.CursorX()); ok {
		overlay[c], glyph[c] = s.Cursor, "┆"
	}

	ramp := styles.Ramp(rows, styles.T().BarHigh, styles.T().BarLow)
	lines := make([]string, 0, rows+axisHeight)
	for r := range rows {
		var b strings.Builder
		b.WriteString(s.Subtle.Render(m.yLabel(src, r, rows)))
		bar := lipgloss.NewStyle().Foreground(ramp[r])
		floor := (rows - 1 - r) * 8
		for c := range cols {
			level := min(max(heights[c]-floor, 0), 8)
			switch {
			case level > 0:
				b.WriteString(bar.Render(levels[level]))
			case glyph[c] != "":
				b.WriteString(overlay[c].Render(glyph[c]))
			default:
				b.WriteString(" ")
			}
		}
		lines = append(lines, b.String())
	}

	lo := humanize.FtoaWithDigits(src.XOffset(), 1)
	hi := humanize.FtoaWithDigits(src.XOffset()+src.XVisibleRegion(), 1)
	axis := render.Row(lo, hi, cols)
	lines = append(lines, strings.Repeat(" ", labelWidth)+s.Muted.Render(render.TruncateAndPad(axis, cols)))

	return strings.Join(lines, "\n")
}

// heights returns the bar height of every column in eighths of a row.
func (m Model) heights(src Source, cols, rows int) []int {
	lo := src.YOffset()
	hi := lo + src.YVisibleRegion()
	scale := func(v float64) float64 { return v }
	if src.LogScale() {
		scale = func(v float64) float64 { return math.Log10(math.Max(v, 1)) }
	}
	bottom, top := scale(lo), scale(hi)

	heights := make([]int, cols)
	if top <= bottom {
		return heights
	}
	for c, v := range src.Sample(cols) {
		frac := (scale(v) - bottom) / (top - bottom)
		frac = math.Min(math.Max(frac, 0), 1)
		heights[c] = int(math.Round(frac * float64(rows*8)))
	}
	return heights
}

func (m Model) columnOf(src Source, x float64) (int, bool) {
	cols := m.Columns()
	width := src.XVisibleRegion()
	if width <= 0 {
		return 0, false
	}
	c := int(math.Floor((x - src.XOffset()) / width * float64(cols)))
	if c < 0 || c >= cols {
		return 0, false
	}
	return c, true
}

// yLabel labels the top and bottom rows with the count they stand for.
func (m Model) yLabel(src Source, row, rows int) string {
	var v float64
	switch row {
	case 0:
		v = src.YOffset() + src.YVisibleRegion()
	case rows - 1:
		v = src.YOffset()
	default:
		return strings.Repeat(" ", labelWidth)
	}
	label := render.Truncate(humanize.Comma(int64(math.Round(v))), labelWidth-1)
	return render.PadLeft(label, labelWidth-1) + " "
}
