package plot

import (
	"strings"
	"testing"

	"github.com/llehouerou/specview/internal/ui/testutil"
	"github.com/llehouerou/specview/internal/viewport"
)

func flatSpectrum() *viewport.Memory {
	counts := make([]float64, 100)
	for i := range counts {
		counts[i] = 10
	}
	return viewport.NewMemory(counts, 1)
}

func newPlot(width, height int) Model {
	m := New()
	m.SetSize(width, height)
	return m
}

func plotLines(t *testing.T, view string) [][]rune {
	t.Helper()
	var out [][]rune
	for _, line := range strings.Split(testutil.StripANSI(view), "\n") {
		out = append(out, []rune(line))
	}
	return out
}

func TestView_Layout(t *testing.T) {
	m := newPlot(28, 5)
	view := m.View(flatSpectrum(), nil)

	lines := plotLines(t, view)
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range strings.Split(view, "\n") {
		if w := testutil.MeasureWidth(line); w != 28 {
			t.Errorf("line %d is %d columns wide, want 28", i, w)
		}
	}

	if got := strings.TrimSpace(string(lines[0][:labelWidth])); got != "20" {
		t.Errorf("top label = %q, want 20", got)
	}
	if got := strings.TrimSpace(string(lines[3][:labelWidth])); got != "0" {
		t.Errorf("bottom label = %q, want 0", got)
	}
	axis := strings.TrimSpace(string(lines[4]))
	if !strings.HasPrefix(axis, "0") || !strings.HasSuffix(axis, "100") {
		t.Errorf("axis = %q, want 0 ... 100", axis)
	}
}

func TestView_BarHeights(t *testing.T) {
	m := newPlot(28, 5)
	lines := plotLines(t, m.View(flatSpectrum(), nil))

	// Counts of 10 fill half of a 20 count range: the two bottom rows.
	for _, r := range []int{2, 3} {
		if got := string(lines[r][labelWidth:]); got != strings.Repeat("█", 20) {
			t.Errorf("row %d = %q, want full blocks", r, got)
		}
	}
	if got := strings.TrimSpace(string(lines[1][labelWidth+1:])); got != "" {
		t.Errorf("row 1 = %q, want empty", got)
	}
}

func TestView_LogScale(t *testing.T) {
	vp := flatSpectrum()
	vp.ToggleLogScale()
	m := newPlot(28, 5)

	lines := plotLines(t, m.View(vp, nil))

	if !strings.Contains(string(lines[0]), "▁") {
		t.Errorf("top row = %q, want a partial block", string(lines[0]))
	}
}

func TestView_MarkersAndCursor(t *testing.T) {
	vp := flatSpectrum()
	vp.SetCursor(75, 0)
	m := newPlot(28, 5)

	lines := plotLines(t, m.View(vp, []float64{50, 500}))

	top := lines[0]
	if got := string(top[labelWidth+10]); got != "│" {
		t.Errorf("marker column = %q, want │", got)
	}
	if got := string(top[labelWidth+15]); got != "┆" {
		t.Errorf("cursor column = %q, want ┆", got)
	}
	if got := string(lines[3][labelWidth+10]); got != "█" {
		t.Errorf("bars draw over markers, got %q", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {labelWidth, 10}, {40, 1}} {
		m := newPlot(size[0], size[1])
		if got := m.View(flatSpectrum(), nil); got != "" {
			t.Errorf("size %v: View() = %q, want empty", size, got)
		}
	}
}

func TestColumnAtAndRowAt(t *testing.T) {
	vp := flatSpectrum()
	m := newPlot(28, 5)

	if _, ok := m.ColumnAt(vp, 3); ok {
		t.Error("ColumnAt inside the label column should fail")
	}
	x, ok := m.ColumnAt(vp, labelWidth)
	if !ok || x != 2.5 {
		t.Errorf("ColumnAt(first) = %v, %v, want 2.5", x, ok)
	}

	y, ok := m.RowAt(vp, 0)
	if !ok || y != 17.5 {
		t.Errorf("RowAt(0) = %v, %v, want 17.5", y, ok)
	}
	if _, ok := m.RowAt(vp, 4); ok {
		t.Error("RowAt on the axis line should fail")
	}
}
