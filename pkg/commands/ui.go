package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/scrollcal/pkg/commands/options"
	"tableflip.dev/scrollcal/pkg/config"
	"tableflip.dev/scrollcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the scrolling calendar",
		Example: `
scrollcal ui
scrollcal ui --capacity 32 --batch 12
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg, err = wo.Apply(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg}
			return i.Do(context.Background())
		},
	}
	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
