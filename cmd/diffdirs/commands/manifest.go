package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest [host]",
		Short: "Print the remote plugin manifest used by :UpdateRemotePlugins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := ""
			if len(args) > 0 {
				host = args[0]
			}
			return c.app.Manifest(cmd.OutOrStdout(), host)
		},
	}
}
