package nvim

import (
	"context"

	"github.com/neovim/go-client/nvim"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ViewHandle = (*tabView)(nil)

// tabView is a comparison view held in a tabpage.
type tabView struct {
	v   *nvim.Nvim
	tab nvim.Tabpage
}

func (t *tabView) ID() domain.ViewID {
	return domain.ViewID(t.tab)
}

func (t *tabView) IsValid(_ context.Context) (bool, error) {
	valid, err := t.v.IsTabpageValid(t.tab)
	if err != nil {
		return false, zerr.With(hostError("nvim_tabpage_is_valid", err), "tabpage", int(t.tab))
	}
	return valid, nil
}

func (t *tabView) Focus(_ context.Context) error {
	if err := t.v.SetCurrentTabpage(t.tab); err != nil {
		return zerr.With(hostError("nvim_set_current_tabpage", err), "tabpage", int(t.tab))
	}
	return nil
}
