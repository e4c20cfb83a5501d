// Package week holds the windowed week buffer that backs the scrolling
// calendar: a contiguous, capacity-bounded run of week records extended
// toward whichever edge the viewport approaches.
package week

import (
	"time"
)

// DaysPerWeek is the fixed length of every Week.
const DaysPerWeek = 7

// IDLayout formats a week's start date into its identifier.
const IDLayout = "2006-01-02"

// Day is a single calendar day inside a Week.
type Day struct {
	Date time.Time
}

// Weekend reports whether the day falls on Saturday or Sunday.
func (d Day) Weekend() bool {
	wd := d.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthStart reports whether the day is the first of its month.
func (d Day) MonthStart() bool {
	return d.Date.Day() == 1
}

// SameDay reports whether t falls on the same calendar day.
func (d Day) SameDay(t time.Time) bool {
	y1, m1, d1 := d.Date.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MonthBoundary reports whether two chronologically adjacent days fall in
// different calendar months.
func MonthBoundary(prev, next Day) bool {
	return prev.Date.Month() != next.Date.Month() || prev.Date.Year() != next.Date.Year()
}

// Week is seven consecutive calendar days starting on the window's anchor
// weekday. The ID is the ISO date of the first day and is stable and
// sortable.
type Week struct {
	ID    string
	Start time.Time
	Days  [DaysPerWeek]Day
}

// NewWeek builds the week beginning at start. The caller is responsible for
// passing an aligned start date; see timeutil.StartOfWeek.
func NewWeek(start time.Time) Week {
	w := Week{
		ID:    start.Format(IDLayout),
		Start: start,
	}
	for i := range w.Days {
		w.Days[i] = Day{Date: start.AddDate(0, 0, i)}
	}
	return w
}

// Next returns the week immediately following w.
func (w Week) Next() Week {
	return NewWeek(w.Start.AddDate(0, 0, DaysPerWeek))
}

// Prev returns the week immediately preceding w.
func (w Week) Prev() Week {
	return NewWeek(w.Start.AddDate(0, 0, -DaysPerWeek))
}

// Contains reports whether t falls on one of the week's days.
func (w Week) Contains(t time.Time) bool {
	for _, d := range w.Days {
		if d.SameDay(t) {
			return true
		}
	}
	return false
}

// MonthLabel returns the "January 2006" label for the week, derived from
// the day-of-month-1 date inside it. Months are at least 28 days long, so
// seven consecutive days hold at most one such date; weeks without one
// return ok=false.
func (w Week) MonthLabel() (string, bool) {
	for _, d := range w.Days {
		if d.MonthStart() {
			return d.Date.Format("January 2006"), true
		}
	}
	return "", false
}

// BoundaryAfter reports whether a month boundary sits between w and the
// week that follows it.
func (w Week) BoundaryAfter() bool {
	last := w.Days[DaysPerWeek-1]
	return MonthBoundary(last, Day{Date: last.Date.AddDate(0, 0, 1)})
}
