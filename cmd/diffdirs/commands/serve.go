package commands

import (
	"io"

	"github.com/spf13/cobra"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as a Neovim remote plugin host on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			var closer io.Closer = nopCloser{}
			if oc, ok := out.(io.Closer); ok {
				closer = oc
			}
			return c.app.Serve(cmd.Context(), cmd.InOrStdin(), out, closer)
		},
	}
}
