// Package viewport defines the rendering viewport a spectrum window drives,
// and an in-memory implementation of it.
package viewport

// Axis selects the horizontal or vertical direction of the viewport.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	if a == Y {
		return "Y"
	}
	return "X"
}

// Viewport is the drawing surface of a spectrum window. Offsets and visible
// regions are in calibrated units (energy on X, counts on Y).
type Viewport interface {
	XOffset() float64
	SetXOffset(offset float64)
	YOffset() float64
	SetYOffset(offset float64)
	XVisibleRegion() float64
	SetXVisibleRegion(width float64)
	YVisibleRegion() float64
	SetYVisibleRegion(height float64)
	YMinVisibleRegion() float64
	SetYMinVisibleRegion(height float64)

	// CursorX and CursorY return the pointer position in calibrated units.
	CursorX() float64
	CursorY() float64

	// ShiftXOffset moves the view by a fraction of the visible width.
	ShiftXOffset(fraction float64)
	// ShiftYOffset moves the view by a fraction of the visible height.
	ShiftYOffset(fraction float64)
	SetXCenter(center float64)
	// XZoomAroundCursor divides the visible width by factor, keeping the
	// cursor position fixed on screen.
	XZoomAroundCursor(factor float64)
	YZoomAroundCursor(factor float64)

	ToggleLogScale()
	ToggleYAutoScale()
	ToggleUseNorm()
	// ShowAll resets the view to the full spectrum.
	ShowAll()
	YAutoScaleOnce()
	Update(redraw bool)

	SetStatusText(text string)
}
