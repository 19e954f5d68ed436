package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	ramp := Ramp(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Render(cluster))
	}
	return b.String()
}

// Ramp returns size colors blended from from to to in HCL space, so that
// equal steps look equally far apart.
func Ramp(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	ramp := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		ramp[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return ramp
}

// lipglossToColor converts a hex lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// ANSI palette colors have no RGB value here
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
