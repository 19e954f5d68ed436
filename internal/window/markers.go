package window

// ZoomMarker is a pair of positions on one axis. P2 is valid only when
// Complete is true.
type ZoomMarker struct {
	P1, P2   float64
	Complete bool
}

// ZoomMarkers is a collection of paired markers holding at most limit.
type ZoomMarkers struct {
	markers []ZoomMarker
	limit   int
}

// NewZoomMarkers creates a collection holding at most limit markers.
func NewZoomMarkers(limit int) *ZoomMarkers {
	return &ZoomMarkers{limit: max(limit, 1)}
}

// Set places pos. It completes the last marker if that one is still
// open, otherwise starts a new marker, dropping the oldest when full.
func (z *ZoomMarkers) Set(pos float64) {
	if n := len(z.markers); n > 0 && !z.markers[n-1].Complete {
		z.markers[n-1].P2 = pos
		z.markers[n-1].Complete = true
		return
	}
	if len(z.markers) >= z.limit {
		z.markers = z.markers[1:]
	}
	z.markers = append(z.markers, ZoomMarker{P1: pos})
}

// Len returns the number of markers.
func (z *ZoomMarkers) Len() int {
	return len(z.markers)
}

// Markers returns a copy of the markers, oldest first.
func (z *ZoomMarkers) Markers() []ZoomMarker {
	out := make([]ZoomMarker, len(z.markers))
	copy(out, z.markers)
	return out
}

// Pop removes and returns the newest marker.
func (z *ZoomMarkers) Pop() (ZoomMarker, bool) {
	n := len(z.markers)
	if n == 0 {
		return ZoomMarker{}, false
	}
	m := z.markers[n-1]
	z.markers = z.markers[:n-1]
	return m, true
}

// Clear removes all markers.
func (z *ZoomMarkers) Clear() {
	z.markers = nil
}
