package nvim

import (
	"context"
	"strings"

	"github.com/neovim/go-client/nvim"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HookResolver = (*HookResolver)(nil)

// HookResolver resolves hook specs written as Lua expressions that evaluate
// to a function. The function is called with the window handle of the pane.
type HookResolver struct {
	v *nvim.Nvim
}

// NewHookResolver creates a HookResolver evaluating Lua in v.
func NewHookResolver(v *nvim.Nvim) *HookResolver {
	return &HookResolver{v: v}
}

// ResolveHook checks that spec evaluates to a Lua function and returns a hook
// calling it. The expression is evaluated again on every call, so a reloaded
// module is picked up.
func (r *HookResolver) ResolveHook(spec string) (domain.PaneHook, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var kind string
	if err := r.v.ExecLua(typeChunk(spec), &kind); err != nil {
		return nil, zerr.With(domain.Classify(domain.ErrHookInvalid, err), "hook", spec)
	}
	if kind != "function" {
		err := zerr.Wrap(domain.ErrHookInvalid, "hook must evaluate to a function")
		return nil, zerr.With(zerr.With(err, "hook", spec), "type", kind)
	}

	chunk := callChunk(spec)
	return func(_ context.Context, pane domain.Pane) error {
		if err := r.v.ExecLua(chunk, nil, int(pane.ID)); err != nil {
			return zerr.With(hostError("nvim_exec_lua", err), "hook", spec)
		}
		return nil
	}, nil
}

func typeChunk(spec string) string {
	return "return type(" + spec + ")"
}

func callChunk(spec string) string {
	return "local hook = " + spec + "\nhook(...)"
}
