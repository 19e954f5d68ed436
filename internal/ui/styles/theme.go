package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - prompts, help keys
	Secondary lipgloss.Color // Gold/orange - pending hotkey echo

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text, axes (very dim)

	// Spectrum
	BarLow  lipgloss.Color // Bar color at the bottom of the Y range
	BarHigh lipgloss.Color // Bar color at the top of the Y range
	Marker  lipgloss.Color // Zoom marker columns
	Cursor  lipgloss.Color // Cursor column

	// Borders
	Border lipgloss.Color

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Prompt  lipgloss.Style // Status line prompt
	Pending lipgloss.Style // Partial hotkey echo
	Marker  lipgloss.Style
	Cursor  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BarLow:  lipgloss.Color("#3b82f6"),
	BarHigh: lipgloss.Color("#ef4444"),
	Marker:  lipgloss.Color("#42b883"),
	Cursor:  lipgloss.Color("#f1a208"),

	Border: lipgloss.Color("#585858"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(t.Secondary),
		Marker:  lipgloss.NewStyle().Foreground(t.Marker),
		Cursor:  lipgloss.NewStyle().Foreground(t.Cursor),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
