// Package printers writes week windows to the terminal for the non-TUI
// commands.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/scrollcal/pkg/week"
)

// PrettyPrint renders week windows as colored tables.
type PrettyPrint struct {
	ShowID bool
}

// Title prints a bold, underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Window prints every resident week, one row each, with month labels
// breaking up the table the same way the TUI separates months.
func (pp *PrettyPrint) Window(w *week.Window, now time.Time) {
	pp.Title(fmt.Sprintf("Weeks %s", w.Span()))
	fmt.Println("")

	tbl := uitable.New()
	tbl.Separator = "  "

	header := []interface{}{""}
	if pp.ShowID {
		header = []interface{}{"Week"}
	}
	for i := 0; i < week.DaysPerWeek; i++ {
		wd := time.Weekday((int(w.Options().WeekStart) + i) % 7)
		header = append(header, wd.String()[:3])
	}
	header = append(header, "")
	tbl.AddRow(header...)

	label := color.New(color.FgHiYellow, color.Italic)
	for _, wk := range w.Weeks() {
		row := make([]interface{}, 0, week.DaysPerWeek+2)
		if pp.ShowID {
			row = append(row, wk.ID)
		} else {
			row = append(row, "")
		}
		for _, d := range wk.Days {
			row = append(row, pp.dayCell(d, now))
		}
		if monthLabel, ok := wk.MonthLabel(); ok {
			row = append(row, label.Sprint(monthLabel))
		} else {
			row = append(row, "")
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) dayCell(d week.Day, now time.Time) string {
	text := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case d.SameDay(now):
		return color.New(color.ReverseVideo).Sprint(text)
	case d.MonthStart():
		return color.New(color.Bold).Sprint(text)
	case d.Weekend():
		return color.New(color.Faint).Sprint(text)
	default:
		return text
	}
}

// MonthRange prints the compact month coverage line under a window table.
func (pp *PrettyPrint) MonthRange(w *week.Window) {
	var labels []string
	for _, wk := range w.Weeks() {
		if l, ok := wk.MonthLabel(); ok {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("months: %s\n", strings.Join(labels, ", "))
}
