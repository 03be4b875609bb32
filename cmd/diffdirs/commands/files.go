package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/diffdirs/internal/app"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files LEFT RIGHT",
		Short: "List the files a diff session would open",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetBool("status")
			return c.app.Files(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], app.FilesOptions{
				Status: status,
			})
		},
	}
	cmd.Flags().BoolP("status", "s", false, "Prefix every path with only-left, only-right, identical or modified")
	return cmd
}
