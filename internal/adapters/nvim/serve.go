package nvim

import (
	"context"
	"fmt"
	"io"

	"github.com/neovim/go-client/nvim"
	"github.com/neovim/go-client/nvim/plugin"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

// ControllerFactory builds the controller served to one Neovim connection.
type ControllerFactory func(editor *Editor, hooks *HookResolver) Controller

// Serve connects to Neovim over r and w, registers the plugin handlers and
// serves requests until the connection closes or ctx is canceled.
func Serve(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	c io.Closer,
	logger ports.Logger,
	newController ControllerFactory,
) error {
	v, err := nvim.New(r, w, c, func(format string, args ...any) {
		logger.Info(fmt.Sprintf(format, args...))
	})
	if err != nil {
		return zerr.Wrap(err, "failed to connect to Neovim")
	}

	p := plugin.New(v)
	Register(ctx, p, newController(NewEditor(v), NewHookResolver(v)))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.Close()
		case <-done:
		}
	}()

	if err := v.Serve(); err != nil && ctx.Err() == nil {
		return zerr.Wrap(err, "neovim connection failed")
	}
	return nil
}
