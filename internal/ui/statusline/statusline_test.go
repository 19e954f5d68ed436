package statusline

import (
	"strings"
	"testing"

	"github.com/llehouerou/specview/internal/input"
	"github.com/llehouerou/specview/internal/ui/testutil"
)

func TestRender_Width(t *testing.T) {
	for _, width := range []int{10, 40, 80} {
		got := Render(Info{Text: "Command: g", State: input.PartialSequence, CursorX: 661.7}, width)
		if w := testutil.MeasureWidth(got); w != width {
			t.Errorf("width %d: rendered %d columns: %q", width, w, testutil.StripANSI(got))
		}
	}
}

func TestRender_ZeroWidth(t *testing.T) {
	if got := Render(Info{Text: "x"}, 0); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRender_Content(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		contains []string
	}{
		{
			name:     "status and cursor",
			info:     Info{Text: "Invalid hotkey g x", CursorX: 661.7, CursorY: 12},
			contains: []string{"Invalid hotkey g x", "x=661.7 y=12.0"},
		},
		{
			name:     "flags",
			info:     Info{LogScale: true, YAutoScale: true, UseNorm: true},
			contains: []string{"log auto norm"},
		},
		{
			name:     "prompt shows cursor",
			info:     Info{Text: "Position: 66", State: input.Editing},
			contains: []string{"Position: 66█"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(Render(tt.info, 80))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestRender_PromptWinsWhenNarrow(t *testing.T) {
	got := testutil.StripANSI(Render(Info{Text: "Position: 1332.5", State: input.Editing}, 12))

	if !strings.HasPrefix(got, "Position: 1") {
		t.Errorf("Render() = %q, want the prompt first", got)
	}
	if strings.Contains(got, "x=") {
		t.Errorf("Render() = %q, flags should be dropped", got)
	}
}

func TestRender_SanitizesText(t *testing.T) {
	got := testutil.StripANSI(Render(Info{Text: "bad\x07text"}, 40))
	if !strings.HasPrefix(got, "badtext") {
		t.Errorf("Render() = %q, want control characters dropped", got)
	}
}
