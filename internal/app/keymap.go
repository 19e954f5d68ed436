package app

import (
	"log"

	"github.com/llehouerou/specview/internal/errmsg"
	"github.com/llehouerou/specview/internal/hotkey"
	"github.com/llehouerou/specview/internal/window"
)

// ContextViewer groups the hotkeys the viewer adds to the window's.
const ContextViewer = "viewer"

// shortHelp is the one line key summary below the status line.
var shortHelp = []window.Binding{
	{Keys: []string{"?"}, Description: "help"},
	{Keys: []string{":"}, Description: "command"},
	{Keys: []string{"q"}, Description: "quit"},
}

func (m Model) bindKeys() error {
	bindings := []struct {
		window.Binding
		action hotkey.Action
	}{
		{window.Binding{Keys: []string{":"}, Description: "Command prompt", Context: ContextViewer}, m.promptCommand},
		{window.Binding{Keys: []string{"?"}, Description: "Toggle help", Context: ContextViewer}, func() { m.session.help.Toggle() }},
		{window.Binding{Keys: []string{"q"}, Description: "Quit", Context: ContextViewer}, func() { m.session.quitting = true }},
		{window.Binding{Keys: []string{"g p"}, Description: "Focus peaks", Context: ContextViewer}, m.focusPeaks},
		{window.Binding{Keys: []string{"g c"}, Description: "Clear zoom markers", Context: ContextViewer}, m.Window.ClearZoomMarkers},
	}
	for _, b := range bindings {
		if err := m.Window.AddHotkey(b.Binding, b.action); err != nil {
			return err
		}
	}
	return nil
}

func (m Model) promptCommand() {
	if err := m.Window.Input().EnterEditMode(":", m.runCommand); err != nil {
		log.Printf("prompt: %v", err)
		m.Viewport.SetStatusText(errmsg.Format(errmsg.OpPromptOpen, err))
	}
}
