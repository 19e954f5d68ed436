package window

import (
	"fmt"
	"log"
	"slices"

	"github.com/llehouerou/specview/internal/hotkey"
	"github.com/llehouerou/specview/internal/keys"
)

// Binding contexts, used to group bindings in help.
const (
	ContextDisplay = "display"
	ContextX       = "x"
	ContextY       = "y"
	ContextView    = "view"
)

// Binding describes a hotkey for documentation.
type Binding struct {
	Keys        []string // alternative sequences, in keys.Parse syntax
	Description string
	Context     string
}

// AddHotkey binds each of the alternative sequences in b.Keys to action
// and records b for help. All alternatives are checked first, so a bad
// key or a conflict leaves the table unchanged.
func (w *Window) AddHotkey(b Binding, action hotkey.Action) error {
	if action == nil {
		return hotkey.ErrNilAction
	}
	table := w.input.Table()
	seqs := make([]keys.Sequence, 0, len(b.Keys))
	for _, s := range b.Keys {
		seq, err := keys.Parse(s)
		if err != nil {
			return fmt.Errorf("hotkey %q: %w", s, err)
		}
		if err := table.Check(seq); err != nil {
			return fmt.Errorf("hotkey %q: %w", s, err)
		}
		for _, prev := range seqs {
			if err := prefixConflict(prev, seq); err != nil {
				return fmt.Errorf("hotkey %q: %w", s, err)
			}
		}
		seqs = append(seqs, seq)
	}

	for _, seq := range seqs {
		if err := w.input.AddHotkey(seq, action); err != nil {
			return fmt.Errorf("hotkey %q: %w", seq.String(), err)
		}
	}
	w.bindings = append(w.bindings, b)
	return nil
}

// prefixConflict rejects two alternatives of one binding where one is a
// strict prefix of the other.
func prefixConflict(a, b keys.Sequence) error {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == len(long) || !slices.Equal(short, long[:len(short)]) {
		return nil
	}
	return &hotkey.ConflictError{Sequence: slices.Clone(long), Bound: slices.Clone(short)}
}

// Bindings returns every binding added to the window, in order.
func (w *Window) Bindings() []Binding {
	return slices.Clone(w.bindings)
}

// ByContext returns the bindings of one context.
func (w *Window) ByContext(context string) []Binding {
	var result []Binding
	for _, b := range w.bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

func (w *Window) bindDefaults() error {
	vp := w.vp
	step := w.settings.ShiftStep
	zoom := w.settings.ZoomFactor

	defaults := []struct {
		Binding
		action hotkey.Action
	}{
		// Display
		{Binding{[]string{"u"}, "Update display", ContextDisplay}, func() { vp.Update(false) }},
		{Binding{[]string{"l"}, "Toggle log scale", ContextDisplay}, vp.ToggleLogScale},
		{Binding{[]string{"A"}, "Toggle Y autoscale", ContextDisplay}, vp.ToggleYAutoScale},
		{Binding{[]string{"!"}, "Toggle normalization", ContextDisplay}, vp.ToggleUseNorm},
		{Binding{[]string{"return", "enter"}, "Redraw", ContextDisplay}, func() { vp.Update(true) }},

		// X direction
		{Binding{[]string{"space"}, "Set X zoom marker", ContextX}, w.SetXZoomMarker},
		{Binding{[]string{"x"}, "Expand X to zoom marker", ContextX}, w.ExpandX},
		{Binding{[]string{"right", ">"}, "Scroll right", ContextX}, func() { vp.ShiftXOffset(step) }},
		{Binding{[]string{"left", "<"}, "Scroll left", ContextX}, func() { vp.ShiftXOffset(-step) }},
		{Binding{[]string{"|"}, "Center on cursor", ContextX}, func() { vp.SetXCenter(vp.CursorX()) }},
		{Binding{[]string{"1"}, "Zoom in X", ContextX}, func() { vp.XZoomAroundCursor(zoom) }},
		{Binding{[]string{"0"}, "Zoom out X", ContextX}, func() { vp.XZoomAroundCursor(1 / zoom) }},

		// Y direction
		{Binding{[]string{"h"}, "Set Y zoom marker", ContextY}, w.SetYZoomMarker},
		{Binding{[]string{"y"}, "Expand Y to zoom marker", ContextY}, w.ExpandY},
		{Binding{[]string{"up"}, "Scroll up", ContextY}, func() { vp.ShiftYOffset(step) }},
		{Binding{[]string{"down"}, "Scroll down", ContextY}, func() { vp.ShiftYOffset(-step) }},
		{Binding{[]string{"Z"}, "Zoom in Y", ContextY}, func() { vp.YZoomAroundCursor(zoom) }},
		{Binding{[]string{"X"}, "Zoom out Y", ContextY}, func() { vp.YZoomAroundCursor(1 / zoom) }},

		// Both
		{Binding{[]string{"e"}, "Expand X and Y", ContextView}, w.Expand},
		{Binding{[]string{"i"}, "Go to position", ContextView}, func() {
			if err := w.PromptPosition(); err != nil {
				log.Printf("go to position: %v", err)
			}
		}},
	}

	for _, d := range defaults {
		if err := w.AddHotkey(d.Binding, d.action); err != nil {
			return err
		}
	}
	return nil
}
