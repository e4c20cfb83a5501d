package grid

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/scrollcal/pkg/tui/theme"
	"tableflip.dev/scrollcal/pkg/week"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRenderer(now time.Time) *Renderer {
	return NewRenderer(theme.Default().Grid, now)
}

func TestHeaderFollowsWeekStart(t *testing.T) {
	r := newRenderer(date(2026, time.August, 30))

	if got := stripANSIString(r.Header(time.Monday)); got != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("monday header: %q", got)
	}
	if got := stripANSIString(r.Header(time.Sunday)); got != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("sunday header: %q", got)
	}
}

func TestWeekLinesHeights(t *testing.T) {
	r := newRenderer(date(2026, time.August, 30))

	// Week Aug 31 - Sep 6 carries the September label.
	withLabel := week.NewWeek(date(2026, time.August, 31))
	lines := r.WeekLines(withLabel)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines for a label week, got %d", len(lines))
	}
	if !strings.Contains(stripANSIString(lines[0]), "September 2026") {
		t.Fatalf("expected month label, got %q", stripANSIString(lines[0]))
	}

	// Mid-month week renders a single row.
	plain := week.NewWeek(date(2026, time.August, 10))
	if lines := r.WeekLines(plain); len(lines) != 1 {
		t.Fatalf("expected 1 line for a plain week, got %d", len(lines))
	}
}

func TestDayRowContent(t *testing.T) {
	r := newRenderer(date(2026, time.January, 1))

	lines := r.WeekLines(week.NewWeek(date(2026, time.August, 10)))
	row := stripANSIString(lines[0])
	if row != "10 11 12 13 14 15 16" {
		t.Fatalf("unexpected day row: %q", row)
	}
}

func TestMonthBoundarySeparator(t *testing.T) {
	r := newRenderer(date(2026, time.January, 1))

	// Aug 31 then Sep 1: boundary between the first two cells.
	lines := r.WeekLines(week.NewWeek(date(2026, time.August, 31)))
	row := stripANSIString(lines[len(lines)-1])
	if !strings.HasPrefix(row, "31| 1") {
		t.Fatalf("expected boundary separator after 31, got %q", row)
	}
	if strings.Count(row, "|") != 1 {
		t.Fatalf("expected exactly one separator, got %q", row)
	}
}

func TestContentLinesHeights(t *testing.T) {
	r := newRenderer(date(2026, time.August, 30))

	weeks := []week.Week{
		week.NewWeek(date(2026, time.August, 10)),   // 1 line
		week.NewWeek(date(2026, time.August, 31)),   // 2 lines
		week.NewWeek(date(2026, time.September, 7)), // 1 line
	}
	lines, heights := r.ContentLines(weeks)

	if len(heights) != 3 {
		t.Fatalf("expected 3 heights, got %d", len(heights))
	}
	total := 0
	for _, h := range heights {
		total += h
	}
	if total != len(lines) {
		t.Fatalf("heights sum %d != %d lines", total, len(lines))
	}
	if heights[0] != 1 || heights[1] != 2 || heights[2] != 1 {
		t.Fatalf("unexpected heights: %v", heights)
	}
}
