// Package window implements keyboard driven navigation of a spectrum window:
// the default hotkeys, zoom markers, and the view commands and options a
// window registers on construction.
package window

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/llehouerou/specview/internal/cmdline"
	"github.com/llehouerou/specview/internal/hotkey"
	"github.com/llehouerou/specview/internal/input"
	"github.com/llehouerou/specview/internal/keys"
	"github.com/llehouerou/specview/internal/options"
	"github.com/llehouerou/specview/internal/viewport"
)

// Settings tunes navigation. Zero fields take the defaults.
type Settings struct {
	DefaultWidth  float64 // visible width used when centering on a position
	MinFocusWidth float64 // narrowest width FocusObjects will zoom to
	FocusPadding  float64 // FocusObjects widens the fitted range by this factor
	ShiftStep     float64 // fraction of the visible region moved by the arrow keys
	ZoomFactor    float64 // zoom step around the cursor
}

// DefaultSettings returns the built-in navigation settings.
func DefaultSettings() Settings {
	return Settings{
		DefaultWidth:  100,
		MinFocusWidth: 50,
		FocusPadding:  1.2,
		ShiftStep:     0.1,
		ZoomFactor:    2,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.DefaultWidth <= 0 {
		s.DefaultWidth = d.DefaultWidth
	}
	if s.MinFocusWidth <= 0 {
		s.MinFocusWidth = d.MinFocusWidth
	}
	if s.FocusPadding <= 0 {
		s.FocusPadding = d.FocusPadding
	}
	if s.ShiftStep <= 0 {
		s.ShiftStep = d.ShiftStep
	}
	if s.ZoomFactor <= 0 {
		s.ZoomFactor = d.ZoomFactor
	}
	return s
}

// Deps are the registries a window registers its commands and options in.
// Nil registries are skipped.
type Deps struct {
	Options  *options.Registry
	Commands *cmdline.Registry
	Settings Settings
}

// Object is anything with an extent on the X axis.
type Object interface {
	// XDimensions returns the object's X range; ok is false when the
	// object has no extent.
	XDimensions() (lo, hi float64, ok bool)
}

// axisOps are the viewport operations Expand needs for one axis.
type axisOps struct {
	markers          *ZoomMarkers
	cursor           func() float64
	setOffset        func(float64)
	setVisibleRegion func(float64)
	reset            func()
}

// Window drives a viewport from the keyboard.
type Window struct {
	vp       viewport.Viewport
	input    *input.Controller
	settings Settings
	axes     map[viewport.Axis]axisOps
	bindings []Binding
}

// New creates a window over vp, binds the default hotkeys and registers
// the window's commands and options in deps.
func New(vp viewport.Viewport, deps Deps) (*Window, error) {
	w := &Window{
		vp:       vp,
		input:    input.New(hotkey.New(), vp),
		settings: deps.Settings.withDefaults(),
	}
	w.axes = map[viewport.Axis]axisOps{
		viewport.X: {
			markers:          NewZoomMarkers(1),
			cursor:           vp.CursorX,
			setOffset:        vp.SetXOffset,
			setVisibleRegion: vp.SetXVisibleRegion,
			reset:            vp.ShowAll,
		},
		viewport.Y: {
			markers:          NewZoomMarkers(1),
			cursor:           vp.CursorY,
			setOffset:        vp.SetYOffset,
			setVisibleRegion: vp.SetYVisibleRegion,
			reset:            vp.YAutoScaleOnce,
		},
	}

	if err := w.bindDefaults(); err != nil {
		return nil, err
	}
	if deps.Options != nil {
		if err := w.registerOptions(deps.Options); err != nil {
			return nil, err
		}
	}
	if deps.Commands != nil {
		if err := w.registerCommands(deps.Commands); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Input returns the window's key controller.
func (w *Window) Input() *input.Controller {
	return w.input
}

// Viewport returns the viewport the window drives.
func (w *Window) Viewport() viewport.Viewport {
	return w.vp
}

// Settings returns the effective navigation settings.
func (w *Window) Settings() Settings {
	return w.settings
}

// HandleKey forwards a key event to the input controller.
func (w *Window) HandleKey(ev keys.Event) input.Result {
	return w.input.HandleKey(ev)
}

// SetZoomMarker places a zoom marker on axis at pos.
func (w *Window) SetZoomMarker(axis viewport.Axis, pos float64) {
	w.axes[axis].markers.Set(pos)
}

// SetZoomMarkerAtCursor places a zoom marker on axis at the cursor.
func (w *Window) SetZoomMarkerAtCursor(axis viewport.Axis) {
	ops := w.axes[axis]
	ops.markers.Set(ops.cursor())
}

// SetXZoomMarker places an X zoom marker at the cursor.
func (w *Window) SetXZoomMarker() { w.SetZoomMarkerAtCursor(viewport.X) }

// SetYZoomMarker places a Y zoom marker at the cursor.
func (w *Window) SetYZoomMarker() { w.SetZoomMarkerAtCursor(viewport.Y) }

// ZoomMarkers returns the zoom markers of axis.
func (w *Window) ZoomMarkers(axis viewport.Axis) []ZoomMarker {
	return w.axes[axis].markers.Markers()
}

// ClearZoomMarkers removes the zoom markers of both axes.
func (w *Window) ClearZoomMarkers() {
	for _, ops := range w.axes {
		ops.markers.Clear()
	}
}

// ExpandX zooms X to the zoom marker, or shows the whole spectrum.
func (w *Window) ExpandX() { w.expand(viewport.X) }

// ExpandY zooms Y to the zoom marker, or autoscales once.
func (w *Window) ExpandY() { w.expand(viewport.Y) }

// Expand expands both axes.
func (w *Window) Expand() {
	w.expand(viewport.X)
	w.expand(viewport.Y)
}

// expand shows the region between the zoom marker pair of axis and
// consumes the marker. A marker with only one position spans to zero.
func (w *Window) expand(axis viewport.Axis) {
	ops := w.axes[axis]
	m, ok := ops.markers.Pop()
	if !ok {
		ops.reset()
		return
	}
	p2 := 0.0
	if m.Complete {
		p2 = m.P2
	}
	ops.setOffset(math.Min(m.P1, p2))
	ops.setVisibleRegion(math.Abs(p2 - m.P1))
}

// GoToPosition centers the view on the position in arg, showing width
// units. A non-positive width uses the default. A position that is not a
// finite number is reported on the status line.
func (w *Window) GoToPosition(arg string, width float64) {
	center, err := parseFinite(arg)
	if err != nil {
		w.vp.SetStatusText("Invalid position: " + arg)
		return
	}
	if width <= 0 {
		width = w.settings.DefaultWidth
	}
	w.vp.SetXVisibleRegion(width)
	w.vp.SetXCenter(center)
}

// parseFinite parses a position, refusing NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// PromptPosition opens a status line prompt asking for a position to
// center on.
func (w *Window) PromptPosition() error {
	return w.input.EnterEditMode("Position: ", func(text string) {
		w.GoToPosition(text, w.settings.DefaultWidth)
	})
}

// ViewRegion shows the X range between start and end. The bounds may be
// given in either order; the view always covers the same range.
func (w *Window) ViewRegion(start, end float64) {
	width := math.Abs(end - start)
	w.vp.SetXVisibleRegion(width)
	w.vp.SetXCenter(math.Min(start, end) + width/2)
}

// FocusObjects fits the view around all objects with an extent, with
// some padding and never narrower than the minimum focus width.
// Objects without an extent are skipped; with none left the view is
// unchanged.
func (w *Window) FocusObjects(objs []Object) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, obj := range objs {
		a, b, ok := obj.XDimensions()
		if !ok {
			continue
		}
		lo = math.Min(lo, math.Min(a, b))
		hi = math.Max(hi, math.Max(a, b))
	}
	if lo > hi {
		return
	}
	width := math.Max((hi-lo)*w.settings.FocusPadding, w.settings.MinFocusWidth)
	w.vp.SetXVisibleRegion(width)
	w.vp.SetXCenter((hi + lo) / 2)
}

// IsInVisibleRegion reports whether obj lies fully inside the visible X
// range, or with part set, whether any of it does. Objects without an
// extent are always visible.
func (w *Window) IsInVisibleRegion(obj Object, part bool) bool {
	a, b, ok := obj.XDimensions()
	if !ok {
		return true
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	start := w.vp.XOffset()
	end := start + w.vp.XVisibleRegion()

	if !part {
		return lo > start && hi < end
	}
	return hi >= start && lo <= end
}
