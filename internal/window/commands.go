package window

import (
	"flag"
	"fmt"
	"math"

	"github.com/llehouerou/specview/internal/cmdline"
	"github.com/llehouerou/specview/internal/options"
)

// OptionYMinVisibleRegion is the option holding the smallest Y visible
// region.
const OptionYMinVisibleRegion = "display.YMinVisibleRegion"

func (w *Window) registerOptions(reg *options.Registry) error {
	opt := options.NewFloat(w.vp.YMinVisibleRegion(), w.vp.SetYMinVisibleRegion)
	return reg.Register(OptionYMinVisibleRegion, opt)
}

func (w *Window) registerCommands(reg *cmdline.Registry) error {
	center := cmdline.Command{
		Name:        "window view center",
		Usage:       "<pos> [-w width>0]",
		Description: "Center the window on a position",
		NArgs:       1,
		Setup: func(fs *flag.FlagSet) cmdline.Runner {
			width := fs.Float64("width", w.settings.DefaultWidth, "width of window")
			fs.Float64Var(width, "w", w.settings.DefaultWidth, "width of window")
			return func(args []string) error {
				if !(*width > 0) || math.IsInf(*width, 0) {
					return &cmdline.UsageError{
						Name:  "window view center",
						Usage: "<pos> [-w width>0]",
						Err:   fmt.Errorf("invalid width %v", *width),
					}
				}
				w.GoToPosition(args[0], *width)
				return nil
			}
		},
	}

	region := cmdline.Command{
		Name:        "window view region",
		Usage:       "<start> <end>",
		Description: "Show the region between start and end",
		NArgs:       2,
		Run: func(args []string) error {
			start, err := parseFinite(args[0])
			if err != nil {
				return &cmdline.UsageError{Name: "window view region", Usage: "<start> <end>", Err: err}
			}
			end, err := parseFinite(args[1])
			if err != nil {
				return &cmdline.UsageError{Name: "window view region", Usage: "<start> <end>", Err: err}
			}
			w.ViewRegion(start, end)
			return nil
		},
	}

	for _, cmd := range []cmdline.Command{center, region} {
		if err := reg.Add(cmd); err != nil {
			return fmt.Errorf("register %s: %w", cmd.Name, err)
		}
	}
	return nil
}
