// Package app is the root bubbletea model of the spectrum viewer: it feeds
// terminal events to the window and draws the plot, status line and help.
package app

import (
	"fmt"
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/specview/internal/cmdline"
	"github.com/llehouerou/specview/internal/config"
	"github.com/llehouerou/specview/internal/errmsg"
	"github.com/llehouerou/specview/internal/options"
	"github.com/llehouerou/specview/internal/ui/helpview"
	"github.com/llehouerou/specview/internal/ui/plot"
	"github.com/llehouerou/specview/internal/viewport"
	"github.com/llehouerou/specview/internal/window"
)

// session is the state hotkey actions change. Actions run inside
// Update, so they reach it through a pointer shared by all model copies.
type session struct {
	help     helpview.Model
	quitting bool
}

// Model is the root application model.
type Model struct {
	Window   *window.Window
	Viewport *viewport.Memory
	Options  *options.Registry
	Commands *cmdline.Registry
	Peaks    []viewport.Peak

	session *session
	plot    plot.Model
	width   int
	height  int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New builds the viewer from configuration: a synthetic spectrum, the
// window with its hotkeys, commands and options, then the startup
// commands.
func New(cfg *config.Config) (Model, error) {
	sc := cfg.GetSpectrumConfig()
	peaks := viewport.DefaultPeaks
	vp := viewport.NewMemory(viewport.Synthetic(sc.Bins, sc.BinWidth, sc.Background, peaks), sc.BinWidth)

	m := Model{
		Viewport: vp,
		Options:  options.NewRegistry(),
		Commands: cmdline.NewRegistry(),
		Peaks:    peaks,
		session:  &session{},
		plot:     plot.New(),
	}

	w, err := window.New(vp, window.Deps{
		Options:  m.Options,
		Commands: m.Commands,
		Settings: window.Settings{
			DefaultWidth:  cfg.View.DefaultWidth,
			MinFocusWidth: cfg.View.MinFocusWidth,
			FocusPadding:  cfg.View.FocusPadding,
			ShiftStep:     cfg.View.ShiftStep,
			ZoomFactor:    cfg.View.ZoomFactor,
		},
	})
	if err != nil {
		return Model{}, fmt.Errorf("create window: %w", err)
	}
	m.Window = w

	if err := m.registerOptions(); err != nil {
		return Model{}, err
	}
	if err := m.registerCommands(); err != nil {
		return Model{}, err
	}
	if err := m.bindKeys(); err != nil {
		return Model{}, fmt.Errorf("%s: %w", errmsg.OpHotkeyRegister, err)
	}
	m.session.help = helpview.New(w.Bindings(), shortHelp...)

	display := cfg.GetDisplayConfig()
	m.applyDisplay(display)

	for _, line := range cfg.Startup {
		if err := m.Commands.Execute(line); err != nil {
			log.Printf("startup: %q: %v", line, err)
			vp.SetStatusText(errmsg.FormatWith(errmsg.OpStartupRun, line, err))
		}
	}

	return m, nil
}

// applyDisplay seeds the display options from configuration.
func (m Model) applyDisplay(display config.DisplayConfig) {
	seed := map[string]string{
		window.OptionYMinVisibleRegion: strconv.FormatFloat(display.YMinVisibleRegion, 'g', -1, 64),
		OptionLogScale:                 strconv.FormatBool(display.LogScale),
		OptionYAutoScale:               strconv.FormatBool(*display.YAutoScale),
	}
	for name, value := range seed {
		if err := m.Options.Set(name, value); err != nil {
			log.Printf("config: %v", err)
		}
	}
}

// Quitting reports whether a quit was requested.
func (m Model) Quitting() bool {
	return m.session.quitting
}

// HelpVisible reports whether the help overlay is shown.
func (m Model) HelpVisible() bool {
	return m.session.help.Visible()
}
