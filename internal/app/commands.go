package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/llehouerou/specview/internal/cmdline"
	"github.com/llehouerou/specview/internal/errmsg"
	"github.com/llehouerou/specview/internal/options"
	"github.com/llehouerou/specview/internal/window"
)

// Display options registered by the viewer.
const (
	OptionLogScale   = "display.LogScale"
	OptionYAutoScale = "display.YAutoScale"
	OptionUseNorm    = "display.UseNorm"
)

// toggleOption binds a boolean option to a viewport toggle.
func toggleOption(get func() bool, toggle func()) *options.Value[bool] {
	return options.NewBool(get(), func(v bool) {
		if get() != v {
			toggle()
		}
	})
}

func (m Model) registerOptions() error {
	vp := m.Viewport
	opts := map[string]options.Option{
		OptionLogScale:   toggleOption(vp.LogScale, vp.ToggleLogScale),
		OptionYAutoScale: toggleOption(vp.YAutoScale, vp.ToggleYAutoScale),
		OptionUseNorm:    toggleOption(vp.UseNorm, vp.ToggleUseNorm),
	}
	for name, opt := range opts {
		if err := m.Options.Register(name, opt); err != nil {
			return err
		}
	}
	return nil
}

func (m Model) registerCommands() error {
	cmds := []cmdline.Command{
		{
			Name:        "option set",
			Usage:       "<name> <value>",
			Description: "Set an option",
			NArgs:       2,
			Run: func(args []string) error {
				return m.Options.Set(args[0], args[1])
			},
		},
		{
			Name:        "option reset",
			Usage:       "<name>",
			Description: "Restore an option to its default",
			NArgs:       1,
			Run: func(args []string) error {
				return m.Options.Reset(args[0])
			},
		},
		{
			Name:        "option show",
			Usage:       "[name]",
			Description: "Show an option, or list all options",
			NArgs:       cmdline.AnyArgs,
			Run:         m.showOption,
		},
		{
			Name:        "window focus peaks",
			Description: "Fit the view around the peaks",
			Run: func([]string) error {
				m.focusPeaks()
				return nil
			},
		},
		{
			Name:        "window markers clear",
			Description: "Remove all zoom markers",
			Run: func([]string) error {
				m.Window.ClearZoomMarkers()
				return nil
			},
		},
		{
			Name:        "help",
			Description: "Toggle the hotkey help",
			Run: func([]string) error {
				m.session.help.Toggle()
				return nil
			},
		},
		{
			Name:        "quit",
			Description: "Leave the viewer",
			Run: func([]string) error {
				m.session.quitting = true
				return nil
			},
		},
	}
	for _, cmd := range cmds {
		if err := m.Commands.Add(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (m Model) showOption(args []string) error {
	if len(args) == 0 {
		m.Viewport.SetStatusText(strings.Join(m.Options.Names(), " "))
		return nil
	}
	if len(args) > 1 {
		return &cmdline.UsageError{Name: "option show", Usage: "[name]"}
	}
	opt, ok := m.Options.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", options.ErrUnknownOption, args[0])
	}
	m.Viewport.SetStatusText(args[0] + " = " + opt.String())
	return nil
}

// runCommand executes a line typed at the command prompt and reports
// failures on the status line.
func (m Model) runCommand(line string) {
	if err := m.Commands.Execute(line); err != nil {
		log.Printf("command %q: %v", line, err)
		m.Viewport.SetStatusText(errmsg.FormatCommand(line, err))
	}
}

// focusPeaks fits the view around the spectrum's peaks.
func (m Model) focusPeaks() {
	objs := make([]window.Object, len(m.Peaks))
	for i, p := range m.Peaks {
		objs[i] = p
	}
	m.Window.FocusObjects(objs)
}
