package week

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewWeekDays(t *testing.T) {
	start := date(2026, time.August, 24) // a Monday
	w := NewWeek(start)

	if w.ID != "2026-08-24" {
		t.Fatalf("expected id 2026-08-24, got %s", w.ID)
	}
	for i, d := range w.Days {
		want := start.AddDate(0, 0, i)
		if !d.Date.Equal(want) {
			t.Fatalf("day %d: expected %v, got %v", i, want, d.Date)
		}
	}
}

func TestWeekNextPrevContiguous(t *testing.T) {
	w := NewWeek(date(2026, time.August, 24))
	if got := w.Next().Start; !got.Equal(date(2026, time.August, 31)) {
		t.Fatalf("next start: got %v", got)
	}
	if got := w.Prev().Start; !got.Equal(date(2026, time.August, 17)) {
		t.Fatalf("prev start: got %v", got)
	}
	if w.Prev().Next().ID != w.ID {
		t.Fatalf("prev/next did not round trip")
	}
}

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		label string
		ok    bool
	}{
		{"contains first", date(2026, time.August, 31), "September 2026", true}, // spans Aug 31 - Sep 6
		{"mid month", date(2026, time.August, 10), "", false},
		{"starts on first", date(2026, time.June, 1), "June 2026", true},
		{"year boundary", date(2025, time.December, 29), "January 2026", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, ok := NewWeek(tc.start).MonthLabel()
			if ok != tc.ok || label != tc.label {
				t.Fatalf("expected (%q, %v), got (%q, %v)", tc.label, tc.ok, label, ok)
			}
		})
	}
}

func TestMonthLabelAtMostOneFirst(t *testing.T) {
	// Walk two years of weeks; no week may contain two month starts.
	w := NewWeek(date(2025, time.January, 6))
	for i := 0; i < 104; i++ {
		firsts := 0
		for _, d := range w.Days {
			if d.MonthStart() {
				firsts++
			}
		}
		if firsts > 1 {
			t.Fatalf("week %s holds %d month starts", w.ID, firsts)
		}
		w = w.Next()
	}
}

func TestMonthBoundary(t *testing.T) {
	aug31 := Day{Date: date(2026, time.August, 31)}
	sep1 := Day{Date: date(2026, time.September, 1)}
	sep2 := Day{Date: date(2026, time.September, 2)}
	dec31 := Day{Date: date(2026, time.December, 31)}
	jan1 := Day{Date: date(2027, time.January, 1)}

	if !MonthBoundary(aug31, sep1) {
		t.Fatalf("expected boundary between Aug 31 and Sep 1")
	}
	if MonthBoundary(sep1, sep2) {
		t.Fatalf("unexpected boundary inside September")
	}
	if !MonthBoundary(dec31, jan1) {
		t.Fatalf("expected boundary across the year end")
	}
}

func TestBoundaryAfter(t *testing.T) {
	if !NewWeek(date(2026, time.May, 25)).BoundaryAfter() {
		t.Fatalf("expected boundary after week ending May 31")
	}
	if NewWeek(date(2026, time.August, 10)).BoundaryAfter() {
		t.Fatalf("unexpected boundary after mid-August week")
	}
}

func TestDayFlags(t *testing.T) {
	sat := Day{Date: date(2026, time.August, 29)}
	mon := Day{Date: date(2026, time.August, 31)}
	first := Day{Date: date(2026, time.September, 1)}

	if !sat.Weekend() || mon.Weekend() {
		t.Fatalf("weekend flags wrong: sat=%v mon=%v", sat.Weekend(), mon.Weekend())
	}
	if !first.MonthStart() || mon.MonthStart() {
		t.Fatalf("month start flags wrong")
	}
	if !mon.SameDay(date(2026, time.August, 31).Add(13 * time.Hour)) {
		t.Fatalf("SameDay should ignore time of day")
	}
}
