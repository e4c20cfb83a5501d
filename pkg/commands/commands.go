package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "scrollcal",
		Short: "An endlessly scrolling calendar for the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWeeks(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
