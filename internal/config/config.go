package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "specview"

type Config struct {
	LogFile string `koanf:"log_file"` // empty disables logging

	Display  DisplayConfig  `koanf:"display"`
	View     ViewConfig     `koanf:"view"`
	Spectrum SpectrumConfig `koanf:"spectrum"`

	// Commands run at startup, e.g. "window view center 661.7 -w 40".
	Startup []string `koanf:"startup"`
}

// DisplayConfig seeds the display options.
type DisplayConfig struct {
	YMinVisibleRegion float64 `koanf:"y_min_visible_region"` // default: 20
	LogScale          bool    `koanf:"log_scale"`
	YAutoScale        *bool   `koanf:"y_autoscale"` // default: true
}

// ViewConfig holds navigation settings. Zero values take the window defaults.
type ViewConfig struct {
	DefaultWidth  float64 `koanf:"default_width"`
	MinFocusWidth float64 `koanf:"min_focus_width"`
	FocusPadding  float64 `koanf:"focus_padding"`
	ShiftStep     float64 `koanf:"shift_step"`
	ZoomFactor    float64 `koanf:"zoom_factor"`
}

// SpectrumConfig describes the generated demo spectrum.
type SpectrumConfig struct {
	Bins       int     `koanf:"bins"`       // default: 2048
	BinWidth   float64 `koanf:"bin_width"`  // default: 1
	Background float64 `koanf:"background"` // default: 200
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/specview/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./specview.toml (pwd, highest priority)
		appName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDisplayConfig returns the display configuration with defaults applied.
func (c *Config) GetDisplayConfig() DisplayConfig {
	cfg := c.Display
	if cfg.YMinVisibleRegion <= 0 {
		cfg.YMinVisibleRegion = 20
	}
	if cfg.YAutoScale == nil {
		on := true
		cfg.YAutoScale = &on
	}
	return cfg
}

// GetSpectrumConfig returns the spectrum configuration with defaults applied.
func (c *Config) GetSpectrumConfig() SpectrumConfig {
	cfg := c.Spectrum
	if cfg.Bins <= 0 {
		cfg.Bins = 2048
	}
	if cfg.BinWidth <= 0 {
		cfg.BinWidth = 1
	}
	if cfg.Background < 0 {
		cfg.Background = 0
	} else if cfg.Background == 0 {
		cfg.Background = 200
	}
	return cfg
}
