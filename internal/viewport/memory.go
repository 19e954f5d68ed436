package viewport

import "math"

const (
	defaultYMinVisibleRegion = 20.0
	autoScaleHeadroom        = 1.1
)

// Compile-time check that Memory implements Viewport.
var _ Viewport = (*Memory)(nil)

// Memory is a Viewport over an in-memory histogram. It keeps the view
// geometry and display flags; drawing is left to the caller, which reads
// the visible part with Sample.
type Memory struct {
	counts   []float64
	binWidth float64

	xOffset, xVisible float64
	yOffset, yVisible float64
	yMinVisible       float64
	cursorX, cursorY  float64

	logScale   bool
	yAutoScale bool
	useNorm    bool

	status  string
	updates int
}

// NewMemory creates a viewport over counts, each bin binWidth wide,
// showing the whole spectrum.
func NewMemory(counts []float64, binWidth float64) *Memory {
	if binWidth <= 0 {
		binWidth = 1
	}
	m := &Memory{
		counts:      counts,
		binWidth:    binWidth,
		yMinVisible: defaultYMinVisibleRegion,
	}
	m.ShowAll()
	return m
}

// Extent returns the calibrated X range covered by the spectrum.
func (m *Memory) Extent() (lo, hi float64) {
	return 0, float64(len(m.counts)) * m.binWidth
}

func (m *Memory) XOffset() float64           { return m.xOffset }
func (m *Memory) SetXOffset(offset float64)  { m.xOffset = offset }
func (m *Memory) YOffset() float64           { return m.yOffset }
func (m *Memory) SetYOffset(offset float64)  { m.yOffset = offset }
func (m *Memory) XVisibleRegion() float64    { return m.xVisible }
func (m *Memory) YVisibleRegion() float64    { return m.yVisible }
func (m *Memory) YMinVisibleRegion() float64 { return m.yMinVisible }
func (m *Memory) CursorX() float64           { return m.cursorX }
func (m *Memory) CursorY() float64           { return m.cursorY }
func (m *Memory) LogScale() bool             { return m.logScale }
func (m *Memory) YAutoScale() bool           { return m.yAutoScale }
func (m *Memory) UseNorm() bool              { return m.useNorm }
func (m *Memory) StatusText() string         { return m.status }
func (m *Memory) SetStatusText(text string)  { m.status = text }

// Updates returns how many times Update was called.
func (m *Memory) Updates() int { return m.updates }

// SetXVisibleRegion sets the visible width, never narrower than one bin.
func (m *Memory) SetXVisibleRegion(width float64) {
	m.xVisible = math.Max(width, m.binWidth)
}

// SetYVisibleRegion sets the visible height, never below the minimum.
func (m *Memory) SetYVisibleRegion(height float64) {
	m.yVisible = math.Max(height, m.yMinVisible)
}

func (m *Memory) SetYMinVisibleRegion(height float64) {
	m.yMinVisible = math.Max(height, 0)
	if m.yVisible < m.yMinVisible {
		m.yVisible = m.yMinVisible
	}
}

// SetCursor moves the pointer, in calibrated units.
func (m *Memory) SetCursor(x, y float64) {
	m.cursorX = x
	m.cursorY = y
}

func (m *Memory) ShiftXOffset(fraction float64) {
	m.xOffset += fraction * m.xVisible
}

func (m *Memory) ShiftYOffset(fraction float64) {
	m.yOffset += fraction * m.yVisible
}

func (m *Memory) SetXCenter(center float64) {
	m.xOffset = center - m.xVisible/2
}

func (m *Memory) XZoomAroundCursor(factor float64) {
	if factor <= 0 {
		return
	}
	m.xOffset = m.cursorX - (m.cursorX-m.xOffset)/factor
	m.SetXVisibleRegion(m.xVisible / factor)
}

func (m *Memory) YZoomAroundCursor(factor float64) {
	if factor <= 0 {
		return
	}
	m.yOffset = m.cursorY - (m.cursorY-m.yOffset)/factor
	m.SetYVisibleRegion(m.yVisible / factor)
}

func (m *Memory) ToggleLogScale() {
	m.logScale = !m.logScale
}

func (m *Memory) ToggleYAutoScale() {
	m.yAutoScale = !m.yAutoScale
	if m.yAutoScale {
		m.YAutoScaleOnce()
	}
}

func (m *Memory) ToggleUseNorm() {
	m.useNorm = !m.useNorm
}

func (m *Memory) ShowAll() {
	lo, hi := m.Extent()
	m.xOffset = lo
	m.SetXVisibleRegion(hi - lo)
	m.YAutoScaleOnce()
}

// YAutoScaleOnce fits the Y range to the highest bin in the visible X range.
func (m *Memory) YAutoScaleOnce() {
	peak := 0.0
	first, last := m.binRange(m.xOffset, m.xOffset+m.xVisible)
	for i := first; i < last; i++ {
		peak = math.Max(peak, m.counts[i])
	}
	m.yOffset = 0
	m.SetYVisibleRegion(peak * autoScaleHeadroom)
}

func (m *Memory) Update(bool) {
	if m.yAutoScale {
		m.YAutoScaleOnce()
	}
	m.updates++
}

// Sample reduces the visible X range to columns values, each the highest
// bin falling into that column. Bins outside the spectrum count as zero.
func (m *Memory) Sample(columns int) []float64 {
	if columns <= 0 {
		return nil
	}
	out := make([]float64, columns)
	step := m.xVisible / float64(columns)
	for c := range columns {
		lo := m.xOffset + float64(c)*step
		first, last := m.binRange(lo, lo+step)
		for i := first; i < last; i++ {
			out[c] = math.Max(out[c], m.counts[i])
		}
	}
	return out
}

// binRange returns the half-open index range of bins overlapping [lo, hi),
// clipped to the spectrum.
func (m *Memory) binRange(lo, hi float64) (first, last int) {
	first = int(math.Floor(lo / m.binWidth))
	last = int(math.Ceil(hi / m.binWidth))
	first = max(first, 0)
	last = min(last, len(m.counts))
	if last < first {
		last = first
	}
	return first, last
}
