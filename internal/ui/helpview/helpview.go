// Package helpview shows the window's hotkeys, grouped by context, in
// columns drawn with the bubbles help component.
package helpview

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/specview/internal/ui"
	"github.com/llehouerou/specview/internal/ui/styles"
	"github.com/llehouerou/specview/internal/window"
)

// contextOrder defines the display order of binding contexts. Contexts
// not listed follow in the order they first appear, titled by their name.
var contextOrder = []string{
	window.ContextDisplay,
	window.ContextX,
	window.ContextY,
	window.ContextView,
}

// contextLabels maps context names to column titles.
var contextLabels = map[string]string{
	window.ContextDisplay: "Display",
	window.ContextX:       "X axis",
	window.ContextY:       "Y axis",
	window.ContextView:    "View",
}

// closeKeys hide the help.
var closeKeys = key.NewBinding(
	key.WithKeys("?", "esc", "q"),
	key.WithHelp("?/esc", "close"),
)

// Model holds the state of the help overlay. It implements help.KeyMap.
type Model struct {
	ui.Base
	help    help.Model
	titles  []string
	groups  [][]key.Binding
	short   []key.Binding
	visible bool
}

// New builds the help from the window bindings. short is shown on the
// one line summary.
func New(bindings []window.Binding, short ...window.Binding) Model {
	m := Model{help: help.New()}
	m.help.ShowAll = true

	contexts := slices.Clone(contextOrder)
	for _, b := range bindings {
		if !slices.Contains(contexts, b.Context) {
			contexts = append(contexts, b.Context)
		}
	}
	for _, ctx := range contexts {
		var group []key.Binding
		for _, b := range bindings {
			if b.Context == ctx {
				group = append(group, toKey(b))
			}
		}
		if len(group) == 0 {
			continue
		}
		label := contextLabels[ctx]
		if label == "" && ctx != "" {
			label = strings.ToUpper(ctx[:1]) + ctx[1:]
		}
		m.titles = append(m.titles, label)
		m.groups = append(m.groups, group)
	}
	for _, b := range short {
		m.short = append(m.short, toKey(b))
	}
	return m
}

func toKey(b window.Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(b.Keys, "/"), b.Description),
	)
}

// ShortHelp implements help.KeyMap.
func (m Model) ShortHelp() []key.Binding {
	return m.short
}

// FullHelp implements help.KeyMap.
func (m Model) FullHelp() [][]key.Binding {
	return m.groups
}

// SetSize sets the area available to the overlay.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.help.Width = width
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle shows or hides the overlay.
func (m *Model) Toggle() {
	m.visible = !m.visible
}

// Update handles a key while the overlay is shown. It reports whether the
// key was consumed; every key is while visible.
func (m *Model) Update(msg tea.KeyMsg) bool {
	if !m.visible {
		return false
	}
	if key.Matches(msg, closeKeys) {
		m.visible = false
	}
	return true
}

// ShortView renders the one line summary.
func (m Model) ShortView() string {
	return m.help.ShortHelpView(m.short)
}

// View renders the full help, one titled column per context. Columns
// wrap onto further rows when they do not fit the width.
func (m Model) View() string {
	s := styles.T().S()
	const gap = "   "
	// frame border and padding
	avail := m.Width() - 4

	var rows, row []string
	rowWidth := 0
	for i, group := range m.groups {
		body := m.help.FullHelpView([][]key.Binding{group})
		col := lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(m.titles[i]), body)
		w := lipgloss.Width(col)
		if len(row) > 0 && avail > 0 && rowWidth+len(gap)+w > avail {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, gap)
			rowWidth += len(gap)
		}
		row = append(row, col)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	heading := styles.ApplyGradient("Hotkeys", styles.T().Primary, styles.T().Secondary)
	content := heading + "\n\n" + strings.Join(rows, "\n\n")
	footer := s.Subtle.Render(m.help.ShortHelpView([]key.Binding{closeKeys}))
	return styles.FrameStyle(true).Padding(0, 1).Render(content + "\n\n" + footer)
}
