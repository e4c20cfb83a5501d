package weeks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/scrollcal/pkg/config"
	"tableflip.dev/scrollcal/pkg/printers"
	"tableflip.dev/scrollcal/pkg/timeutil"
	"tableflip.dev/scrollcal/pkg/week"
)

// Weeks prints the seeded week window without entering the TUI, which is
// handy for scripting and for checking what a set of tunables produces.
type Weeks struct {
	Around string
	ShowID bool
	JSON   bool
	Config config.Config
}

// weekOut is the JSON shape for one week.
type weekOut struct {
	ID         string   `json:"id"`
	Start      string   `json:"start"`
	Days       []string `json:"days"`
	MonthLabel string   `json:"monthLabel,omitempty"`
}

func (n *Weeks) Do(ctx context.Context) error {
	now := time.Now()
	anchor, err := timeutil.ParseDate(n.Around, now)
	if err != nil {
		return err
	}

	window, err := week.NewWindow(anchor, n.Config.WindowOptions())
	if err != nil {
		return err
	}

	if n.JSON {
		return n.printJSON(window)
	}

	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Window(window, now)
	pp.MonthRange(window)
	return nil
}

func (n *Weeks) printJSON(window *week.Window) error {
	out := make([]weekOut, 0, window.Len())
	for _, wk := range window.Weeks() {
		o := weekOut{
			ID:    wk.ID,
			Start: wk.Start.Format(timeutil.LayoutISO),
		}
		for _, d := range wk.Days {
			o.Days = append(o.Days, d.Date.Format(timeutil.LayoutISO))
		}
		if label, ok := wk.MonthLabel(); ok {
			o.MonthLabel = label
		}
		out = append(out, o)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
