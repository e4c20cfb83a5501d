package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Key prints the legend for the calendar grid markers.
type Key struct{}

type marker struct {
	symbol  string
	meaning string
}

var markers = []marker{
	{"dd", "calendar day"},
	{"reverse", "today"},
	{"faint", "weekend"},
	{"bold 1", "first day of a month"},
	{"|", "month boundary between adjacent days"},
	{"January 2006 ---", "month label row above the week holding the 1st"},
}

func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, bold.Sprint("\nGrid markers"))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(color.New(color.Bold).Sprint("Marker"), color.New(color.Bold).Sprint("Meaning"))
	for _, m := range markers {
		tbl.AddRow(m.symbol, m.meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
