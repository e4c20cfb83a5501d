package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/scrollcal/pkg/config"
	"tableflip.dev/scrollcal/pkg/timeutil"
)

// WindowOptions overrides the configured window tunables from flags.
type WindowOptions struct {
	Capacity  int
	Batch     int
	Margin    int
	WeekStart string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVar(&o.Capacity, "capacity", 0,
		"Maximum resident weeks (overrides config).")
	cmd.Flags().IntVar(&o.Batch, "batch", 0,
		"Weeks loaded per extension (overrides config).")
	cmd.Flags().IntVar(&o.Margin, "margin", 0,
		"Sentinel margin in lines; 0 derives it from the viewport height.")
	cmd.Flags().StringVar(&o.WeekStart, "weekstart", "",
		"Weekday each week starts on, e.g. monday (overrides config).")
}

// Apply merges the flag overrides onto cfg; zero values leave cfg alone.
func (o *WindowOptions) Apply(cfg config.Config) (config.Config, error) {
	if o.Capacity > 0 {
		cfg.Capacity = o.Capacity
	}
	if o.Batch > 0 {
		cfg.Batch = o.Batch
	}
	if o.Margin > 0 {
		cfg.Margin = o.Margin
	}
	if o.WeekStart != "" {
		wd, err := timeutil.ParseWeekday(o.WeekStart)
		if err != nil {
			return cfg, err
		}
		cfg.WeekStart = wd
	}
	return cfg, nil
}
