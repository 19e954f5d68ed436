package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/specview/internal/keys"
	"github.com/llehouerou/specview/internal/ui"
	"github.com/llehouerou/specview/internal/viewport"
)

// plotOrigin is where the first plot cell sits on screen, inside the frame.
const plotOrigin = 1

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.plot.SetSize(max(msg.Width-ui.BorderWidth, 0), max(msg.Height-ui.ScreenOverhead, 0))
	m.session.help.SetSize(msg.Width, msg.Height)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.session.quitting = true
		return m, tea.Quit
	}
	if m.session.help.Update(msg) {
		return m, nil
	}

	m.Window.HandleKey(keys.FromTea(msg))

	if m.session.quitting {
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse moves the cursor with the pointer. A left click also sets
// an X zoom marker there.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	x, okX := m.plot.ColumnAt(m.Viewport, msg.X-plotOrigin)
	y, okY := m.plot.RowAt(m.Viewport, msg.Y-plotOrigin)
	if !okX || !okY {
		return m
	}
	m.Viewport.SetCursor(x, y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.Window.SetZoomMarkerAtCursor(viewport.X)
	}
	return m
}
