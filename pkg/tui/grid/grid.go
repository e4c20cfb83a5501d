// Package grid renders resident weeks into terminal rows. It is purely
// presentational: all flags it draws (today, weekend, month boundaries)
// come from the week data model.
package grid

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/scrollcal/pkg/tui/theme"
	"tableflip.dev/scrollcal/pkg/week"
)

var weekdayAbbrev = map[time.Weekday]string{
	time.Sunday:    "Su",
	time.Monday:    "Mo",
	time.Tuesday:   "Tu",
	time.Wednesday: "We",
	time.Thursday:  "Th",
	time.Friday:    "Fr",
	time.Saturday:  "Sa",
}

// Renderer turns weeks into styled lines.
type Renderer struct {
	styles theme.GridTheme
	now    time.Time
}

// NewRenderer builds a renderer; now controls the today highlight.
func NewRenderer(styles theme.GridTheme, now time.Time) *Renderer {
	return &Renderer{styles: styles, now: now}
}

// SetNow updates the reference day used for the today highlight.
func (r *Renderer) SetNow(now time.Time) {
	r.now = now
}

// Header renders the fixed weekday header row, starting from the given
// anchor weekday.
func (r *Renderer) Header(start time.Weekday) string {
	cells := make([]string, 0, week.DaysPerWeek)
	for i := 0; i < week.DaysPerWeek; i++ {
		wd := time.Weekday((int(start) + i) % 7)
		cells = append(cells, weekdayAbbrev[wd])
	}
	return r.styles.WeekdayHeader.Render(strings.Join(cells, " "))
}

// WeekLines renders one week. Weeks that carry a month label yield an
// extra label line above the day row, so adjacent rows in different
// months are visually separated and row heights vary.
func (r *Renderer) WeekLines(w week.Week) []string {
	var lines []string
	if label, ok := w.MonthLabel(); ok {
		lines = append(lines, r.monthLabelLine(label))
	}
	lines = append(lines, r.dayRow(w))
	return lines
}

// ContentLines renders every week in order and returns the flat line
// buffer along with per-week heights, which the caller needs for scroll
// compensation.
func (r *Renderer) ContentLines(weeks []week.Week) (lines []string, heights []int) {
	heights = make([]int, len(weeks))
	for i, w := range weeks {
		rendered := r.WeekLines(w)
		heights[i] = len(rendered)
		lines = append(lines, rendered...)
	}
	return lines, heights
}

func (r *Renderer) dayRow(w week.Week) string {
	var b strings.Builder
	for i, d := range w.Days {
		if i > 0 {
			sep := " "
			if week.MonthBoundary(w.Days[i-1], d) {
				sep = r.styles.MonthRule.Render("|")
			}
			b.WriteString(sep)
		}
		b.WriteString(r.dayCell(d))
	}
	return b.String()
}

func (r *Renderer) dayCell(d week.Day) string {
	text := fmt.Sprintf("%2d", d.Date.Day())

	style := r.styles.Day
	if d.Weekend() {
		style = r.styles.Weekend
	}
	if d.MonthStart() {
		style = style.Inherit(r.styles.MonthStart)
	}
	if d.SameDay(r.now) {
		style = r.styles.Today
	}
	return style.Render(text)
}

func (r *Renderer) monthLabelLine(label string) string {
	// Width matches the 7-cell day row: 7*2 digits + 6 separators.
	const rowWidth = week.DaysPerWeek*2 + week.DaysPerWeek - 1
	rule := rowWidth - len(label) - 1
	if rule < 0 {
		rule = 0
	}
	return r.styles.MonthLabel.Render(label) + " " + r.styles.MonthRule.Render(strings.Repeat("-", rule))
}
