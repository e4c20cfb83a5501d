// Package timeutil provides the date arithmetic the calendar window is
// built on: week alignment and human-friendly weekday and date parsing.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the canonical date format used for week identifiers
	// and CLI date arguments.
	LayoutISO = "2006-01-02"
	// LayoutUS is accepted as a CLI convenience.
	LayoutUS = "January 2, 2006"
)

var weekdayMap = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// StartOfWeek truncates t to midnight on the most recent occurrence of
// start (inclusive), in t's location.
func StartOfWeek(t time.Time, start time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(start) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// ParseWeekday maps names like "monday" or "mon" to a weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	if wd, ok := weekdayMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return wd, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}

// ParseDate accepts an ISO date, a long US date, or the keywords "today"
// and "now".
func ParseDate(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	switch strings.ToLower(trimmed) {
	case "", "today", "now":
		return now, nil
	}
	if t, err := time.ParseInLocation(LayoutISO, trimmed, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(LayoutUS, trimmed, now.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want %s)", trimmed, LayoutISO)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
