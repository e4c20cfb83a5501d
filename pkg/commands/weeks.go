package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/scrollcal/pkg/commands/options"
	"tableflip.dev/scrollcal/pkg/config"
	"tableflip.dev/scrollcal/pkg/runner/weeks"
)

func addWeeks(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}
	around := ""
	showID := false

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "print the seeded week window",
		Example: `
scrollcal weeks
scrollcal weeks --around 2026-03-01 --ids
scrollcal weeks --capacity 8 --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			cfg, err = wo.Apply(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			n := weeks.Weeks{
				Around: around,
				ShowID: showID,
				JSON:   oo.JSON,
				Config: cfg,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&around, "around", "",
		"Anchor date the window is centered on; defaults to today.")
	cmd.Flags().BoolVar(&showID, "ids", false,
		"Show week identifiers (ISO start dates).")
	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
