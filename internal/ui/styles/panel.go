package styles

import "github.com/charmbracelet/lipgloss"

// FrameStyle returns the border style around the spectrum plot. The
// border is highlighted while a prompt or partial hotkey is pending.
func FrameStyle(pending bool) lipgloss.Style {
	color := T().Border
	if pending {
		color = T().Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
