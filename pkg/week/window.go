package week

import (
	"fmt"
	"time"

	"tableflip.dev/scrollcal/pkg/timeutil"
)

// Defaults used when tunables are left zero.
const (
	DefaultCapacity = 60
	DefaultBatch    = 20
)

// MinCapacity is the smallest window that still keeps an anchor week with a
// neighbor on either side.
const MinCapacity = 3

// Options tunes a Window.
type Options struct {
	// Capacity is the maximum (and, after Initialize, exact) number of
	// resident weeks.
	Capacity int
	// Batch is the number of weeks fetched per extension.
	Batch int
	// WeekStart is the weekday every week is aligned to.
	WeekStart time.Weekday
}

func (o Options) withDefaults() Options {
	if o.Capacity == 0 {
		o.Capacity = DefaultCapacity
	}
	if o.Batch == 0 {
		o.Batch = DefaultBatch
	}
	return o
}

func (o Options) validate() error {
	if o.Capacity < MinCapacity {
		return fmt.Errorf("window capacity %d below minimum %d", o.Capacity, MinCapacity)
	}
	if o.Batch < 1 {
		return fmt.Errorf("window batch %d must be positive", o.Batch)
	}
	return nil
}

// Window is the bounded, contiguous run of resident weeks. After
// Initialize it always holds exactly Capacity weeks, sorted ascending with
// no gaps or duplicates; extensions slide the run toward one end and trim
// the other in the same transition, so consumers never observe an
// over-capacity or fragmented state.
//
// Extensions are not invertible once truncation applies: with
// Capacity < 2×Batch an ExtendBackward followed by an ExtendForward lands
// on a different range than the starting one, because the trimmed far end
// is recomputed rather than restored.
type Window struct {
	weeks []Week
	opts  Options
}

// NewWindow validates tunables and seeds the window around anchor so the
// anchor's week sits at the middle index. The result is deterministic for
// a given anchor and tunables.
func NewWindow(anchor time.Time, opts Options) (*Window, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	w := &Window{opts: opts}
	w.Initialize(anchor)
	return w, nil
}

// Initialize seeds the window with exactly Capacity contiguous weeks,
// centered on anchor's week. Any prior contents are discarded.
func (w *Window) Initialize(anchor time.Time) {
	anchorStart := timeutil.StartOfWeek(anchor, w.opts.WeekStart)
	first := anchorStart.AddDate(0, 0, -DaysPerWeek*(w.opts.Capacity/2))

	w.weeks = make([]Week, 0, w.opts.Capacity)
	cur := NewWeek(first)
	for i := 0; i < w.opts.Capacity; i++ {
		w.weeks = append(w.weeks, cur)
		cur = cur.Next()
	}
}

// Recenter is Initialize with a new anchor; same guarantees.
func (w *Window) Recenter(anchor time.Time) {
	w.Initialize(anchor)
}

// ExtendBackward prepends Batch earlier weeks and trims the tail back to
// Capacity. The first resident week afterwards starts Batch weeks earlier
// than before. The caller owns scroll-offset compensation for the content
// inserted above the viewport; see pkg/tui/app.
func (w *Window) ExtendBackward() {
	batch := w.opts.Batch
	first := w.weeks[0]

	fresh := make([]Week, batch)
	cur := first.Prev()
	for i := batch - 1; i >= 0; i-- {
		fresh[i] = cur
		cur = cur.Prev()
	}

	weeks := append(fresh, w.weeks...)
	if len(weeks) > w.opts.Capacity {
		weeks = weeks[:w.opts.Capacity]
	}
	w.weeks = weeks
}

// ExtendForward appends Batch later weeks and trims the head back to
// Capacity.
func (w *Window) ExtendForward() {
	batch := w.opts.Batch
	last := w.weeks[len(w.weeks)-1]

	weeks := w.weeks
	cur := last
	for i := 0; i < batch; i++ {
		cur = cur.Next()
		weeks = append(weeks, cur)
	}
	if over := len(weeks) - w.opts.Capacity; over > 0 {
		weeks = append([]Week(nil), weeks[over:]...)
	}
	w.weeks = weeks
}

// Weeks returns the resident weeks in ascending order. The slice is shared;
// callers must treat it as read-only.
func (w *Window) Weeks() []Week {
	return w.weeks
}

// Len returns the number of resident weeks.
func (w *Window) Len() int {
	return len(w.weeks)
}

// First returns the earliest resident week.
func (w *Window) First() Week {
	return w.weeks[0]
}

// Last returns the latest resident week.
func (w *Window) Last() Week {
	return w.weeks[len(w.weeks)-1]
}

// Options returns the tunables the window was built with.
func (w *Window) Options() Options {
	return w.opts
}

// Contains reports whether t falls inside the resident range.
func (w *Window) Contains(t time.Time) bool {
	idx := w.IndexOf(t)
	return idx >= 0
}

// IndexOf returns the index of the resident week containing t, or -1.
func (w *Window) IndexOf(t time.Time) int {
	start := timeutil.StartOfWeek(t, w.opts.WeekStart)
	id := start.Format(IDLayout)
	for i, wk := range w.weeks {
		if wk.ID == id {
			return i
		}
	}
	return -1
}

// Span formats the resident date range for status displays.
func (w *Window) Span() string {
	first := w.First().Start
	last := w.Last().Days[DaysPerWeek-1].Date
	return fmt.Sprintf("%s to %s", first.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"))
}
