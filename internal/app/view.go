package app

import (
	"strings"

	"github.com/llehouerou/specview/internal/input"
	"github.com/llehouerou/specview/internal/ui/overlay"
	"github.com/llehouerou/specview/internal/ui/statusline"
	"github.com/llehouerou/specview/internal/ui/styles"
	"github.com/llehouerou/specview/internal/viewport"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	vp := m.Viewport
	ctl := m.Window.Input()
	pending := ctl.State() != input.Idle

	frame := styles.FrameStyle(pending).Render(m.plot.View(vp, m.markerPositions()))

	status := statusline.Render(statusline.Info{
		Text:       vp.StatusText(),
		State:      ctl.State(),
		CursorX:    vp.CursorX(),
		CursorY:    vp.CursorY(),
		LogScale:   vp.LogScale(),
		YAutoScale: vp.YAutoScale(),
		UseNorm:    vp.UseNorm(),
	}, m.width)

	screen := strings.Join([]string{frame, status, m.session.help.ShortView()}, "\n")

	if m.session.help.Visible() {
		return overlay.Center(screen, m.session.help.View(), m.width, m.height)
	}
	return screen
}

// markerPositions returns the X zoom marker positions to draw.
func (m Model) markerPositions() []float64 {
	var xs []float64
	for _, zm := range m.Window.ZoomMarkers(viewport.X) {
		xs = append(xs, zm.P1)
		if zm.Complete {
			xs = append(xs, zm.P2)
		}
	}
	return xs
}
