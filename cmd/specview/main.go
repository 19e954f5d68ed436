package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/specview/internal/app"
	"github.com/llehouerou/specview/internal/config"
	"github.com/llehouerou/specview/internal/errmsg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "specview:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	// The terminal belongs to the UI: log to a file or nowhere.
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "specview")
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpLogFileOpen, err))
		}
		defer f.Close()
	}

	m, err := app.New(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	log.Printf("spectrum of %d bins loaded", cfg.GetSpectrumConfig().Bins)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("program: %v", err)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
