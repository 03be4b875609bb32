// Package nvim binds the editor port to a Neovim instance over msgpack-RPC.
//
// Containers are tabpages, panes are windows and the navigation list is the
// quickfix list. Every RPC failure is wrapped with a stack trace.
package nvim

import (
	"context"
	"path/filepath"

	"github.com/neovim/go-client/nvim"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Editor = (*Editor)(nil)

// Keymaps installed over the quickfix list.
const (
	PrevKeymap = "<Plug>DiffDirsPrev"
	NextKeymap = "<Plug>DiffDirsNext"
)

// Editor implements ports.Editor on a Neovim client.
type Editor struct {
	v *nvim.Nvim
}

// NewEditor creates an Editor driving v.
func NewEditor(v *nvim.Nvim) *Editor {
	return &Editor{v: v}
}

// CurrentView returns the current tabpage.
func (e *Editor) CurrentView(_ context.Context) (ports.ViewHandle, error) {
	tab, err := e.v.CurrentTabpage()
	if err != nil {
		return nil, hostError("nvim_get_current_tabpage", err)
	}
	return &tabView{v: e.v, tab: tab}, nil
}

// OpenPane edits file at placement in diff mode and returns the focused window.
func (e *Editor) OpenPane(_ context.Context, file string, placement domain.Placement) (domain.Pane, error) {
	var escaped string
	if err := e.v.Call("fnameescape", &escaped, file); err != nil {
		return domain.Pane{}, hostError("fnameescape", err)
	}

	cmds, err := openCommands(placement, escaped)
	if err != nil {
		return domain.Pane{}, err
	}
	for _, cmd := range cmds {
		if err := e.v.Command(cmd); err != nil {
			return domain.Pane{}, zerr.With(hostError("nvim_command", err), "command", cmd)
		}
	}

	win, err := e.v.CurrentWindow()
	if err != nil {
		return domain.Pane{}, hostError("nvim_get_current_win", err)
	}
	buf, err := e.v.WindowBuffer(win)
	if err != nil {
		return domain.Pane{}, hostError("nvim_win_get_buf", err)
	}

	return domain.Pane{ID: domain.PaneID(win), Buffer: domain.BufferID(buf), File: file}, nil
}

// SetPaneOptions sets winfixbuf on the window and modifiable on its buffer.
func (e *Editor) SetPaneOptions(_ context.Context, pane domain.Pane, opts domain.PaneOptions) error {
	if err := e.v.SetWindowOption(nvim.Window(pane.ID), "winfixbuf", opts.FixedBuffer); err != nil {
		return zerr.With(hostError("nvim_win_set_option", err), "window", int(pane.ID))
	}
	if err := e.v.SetBufferOption(nvim.Buffer(pane.Buffer), "modifiable", opts.Modifiable); err != nil {
		return zerr.With(hostError("nvim_buf_set_option", err), "buffer", int(pane.Buffer))
	}
	return nil
}

// ReplaceNavigationList replaces the quickfix list.
func (e *Editor) ReplaceNavigationList(_ context.Context, entries []domain.NavigationEntry) error {
	if err := e.v.Call("setqflist", nil, quickfixItems(entries), "r"); err != nil {
		return hostError("setqflist", err)
	}
	return nil
}

// RegisterNavigationKeymaps maps the <Plug> keys to :cprev/:cnext and makes
// quickfix jumps switch to the tabpage already showing the buffer.
func (e *Editor) RegisterNavigationKeymaps(_ context.Context) error {
	opts := map[string]bool{"noremap": true, "silent": true}
	maps := [][2]string{
		{PrevKeymap, ":silent cp!<CR>"},
		{NextKeymap, ":silent cn!<CR>"},
	}
	for _, m := range maps {
		if err := e.v.SetKeyMap("n", m[0], m[1], opts); err != nil {
			return zerr.With(hostError("nvim_set_keymap", err), "lhs", m[0])
		}
	}
	if err := e.v.Command("set switchbuf+=usetab"); err != nil {
		return hostError("nvim_command", err)
	}
	return nil
}

// ReportError writes message to the message area as an error.
func (e *Editor) ReportError(_ context.Context, message string) error {
	if err := e.v.WritelnErr(message); err != nil {
		return hostError("nvim_err_writeln", err)
	}
	return nil
}

// ReportWarning shows message through vim.notify at WARN level.
func (e *Editor) ReportWarning(_ context.Context, message string) error {
	if err := e.v.Notify(message, nvim.LogWarnLevel, map[string]any{}); err != nil {
		return hostError("nvim_notify", err)
	}
	return nil
}

// AbsPath expands path with fnamemodify(path, ":p"), which resolves it against
// the working directory of the current window.
func (e *Editor) AbsPath(_ context.Context, path string) (string, error) {
	var abs string
	if err := e.v.Call("fnamemodify", &abs, path, ":p"); err != nil {
		return "", zerr.With(hostError("fnamemodify", err), "path", path)
	}
	return filepath.Clean(abs), nil
}

func openCommands(placement domain.Placement, escapedFile string) ([]string, error) {
	switch placement {
	case domain.PlaceCurrent:
		return []string{"edit " + escapedFile, "diffthis"}, nil
	case domain.PlaceNewContainer:
		return []string{"tabedit " + escapedFile, "diffthis"}, nil
	case domain.PlaceVerticalSplit:
		return []string{"vertical diffsplit " + escapedFile}, nil
	case domain.PlaceBottomRightSplit:
		return []string{"botright diffsplit " + escapedFile}, nil
	default:
		return nil, zerr.With(zerr.New("unknown placement"), "placement", int(placement))
	}
}

func quickfixItems(entries []domain.NavigationEntry) []map[string]any {
	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]any{
			"bufnr":    int(e.Buffer),
			"filename": e.Filename,
			"text":     e.Text,
		})
	}
	return items
}

func hostError(request string, err error) error {
	return zerr.WithStack(zerr.With(domain.Classify(domain.ErrHostInteraction, err), "request", request))
}
