package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan LEFT RIGHT [OUTPUT]",
		Short: "Print the layout a diff session would open, without an editor",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Plan(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}
