package nvim

import (
	"context"

	"github.com/neovim/go-client/nvim/plugin"
)

// Names of the command and functions registered with Neovim.
const (
	CommandName     = "DiffDirs"
	SetupFunction   = "DiffDirsSetup"
	FilesFunction   = "DiffDirsFiles"
	JumpFunction    = "DiffDirsJump"
	DefaultHostName = "diffdirs"
)

// Controller is the application surface exposed to Neovim.
type Controller interface {
	Setup(ctx context.Context, opts map[string]any) error
	DiffDirs(ctx context.Context, args []string) error
	Files() []string
	Jump(ctx context.Context, path string) error
}

// Register installs the DiffDirs command and functions on p. Handlers run
// with ctx; Neovim requests carry no context of their own.
func Register(ctx context.Context, p *plugin.Plugin, c Controller) {
	p.HandleCommand(&plugin.CommandOptions{
		Name:     CommandName,
		NArgs:    "+",
		Complete: "dir",
	}, func(args []string) error {
		return c.DiffDirs(ctx, args)
	})

	p.HandleFunction(&plugin.FunctionOptions{Name: SetupFunction}, func(args []map[string]any) error {
		opts := map[string]any{}
		if len(args) > 0 && args[0] != nil {
			opts = args[0]
		}
		return c.Setup(ctx, opts)
	})

	p.HandleFunction(&plugin.FunctionOptions{Name: FilesFunction}, func(_ []string) ([]string, error) {
		return c.Files(), nil
	})

	p.HandleFunction(&plugin.FunctionOptions{Name: JumpFunction}, func(args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return c.Jump(ctx, path)
	})
}

// Manifest returns the remote plugin manifest for host, as written to the
// rplugin manifest by :UpdateRemotePlugins.
func Manifest(host string) []byte {
	if host == "" {
		host = DefaultHostName
	}
	p := plugin.New(nil)
	Register(context.Background(), p, nil)
	return p.Manifest(host)
}
