package ui

// Base holds the area a component draws into. Components embed it and
// receive their size from the parent on every resize.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Inner returns the area left once fixed gutters are taken off, never
// negative.
func (b Base) Inner(gutterWidth, gutterHeight int) (width, height int) {
	return max(b.width-gutterWidth, 0), max(b.height-gutterHeight, 0)
}
