// Package scroll detects when the viewport nears either edge of the
// rendered content and asks for more data in that direction. Sensors are
// edge-triggered: one event per approach, re-armed only after the viewport
// leaves the expanded margin region. Consumers stay correct even if a
// sensor is replaced by a level-triggered source, because window
// extensions are idempotent with respect to repeated requests at the same
// committed edge.
package scroll

// Edge identifies which end of the content a sensor watches.
type Edge int

const (
	// Top watches the earliest end of the content.
	Top Edge = iota
	// Bottom watches the latest end.
	Bottom
)

func (e Edge) String() string {
	if e == Top {
		return "top"
	}
	return "bottom"
}

// Sentinel tracks one edge's proximity state.
type Sentinel struct {
	edge Edge
	near bool
}

// Observe feeds the current distance (in rendered lines) between the
// sentinel's edge and the near side of the expanded viewport region. It
// returns true exactly once per transition into the region.
func (s *Sentinel) Observe(distance, margin int) bool {
	within := distance <= margin
	fired := within && !s.near
	s.near = within
	return fired
}

// Reset re-arms the sentinel, e.g. after the window underneath it was
// rebuilt around a new anchor.
func (s *Sentinel) Reset() {
	s.near = false
}

// Detector pairs a top and a bottom sentinel over one scrolling surface.
type Detector struct {
	top    Sentinel
	bottom Sentinel

	// Margin is the expansion of the viewport region in lines. Zero means
	// derive it from the viewport height on every observation.
	Margin int
}

// NewDetector builds a detector with the given margin; margin 0 selects
// height-proportional margins.
func NewDetector(margin int) *Detector {
	return &Detector{
		top:    Sentinel{edge: Top},
		bottom: Sentinel{edge: Bottom},
		Margin: margin,
	}
}

// Observe evaluates both sentinels against the current scroll geometry:
// offset is the first visible line, contentHeight the total rendered
// lines, viewHeight the visible lines. The returned slice holds the edges
// that fired this observation, top first.
func (d *Detector) Observe(offset, contentHeight, viewHeight int) []Edge {
	margin := d.Margin
	if margin <= 0 {
		margin = viewHeight
		if margin < 1 {
			margin = 1
		}
	}

	topDistance := offset
	bottomDistance := contentHeight - viewHeight - offset
	if bottomDistance < 0 {
		bottomDistance = 0
	}

	var fired []Edge
	if d.top.Observe(topDistance, margin) {
		fired = append(fired, Top)
	}
	if d.bottom.Observe(bottomDistance, margin) {
		fired = append(fired, Bottom)
	}
	return fired
}

// Reset re-arms both sentinels.
func (d *Detector) Reset() {
	d.top.Reset()
	d.bottom.Reset()
}
