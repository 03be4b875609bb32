// Package layout opens the panes of one comparison view.
//
// A Policy is selected by the session's root count. Two-way views put the
// left file beside an editable right file. Three-way views put the left and
// right files side by side, both read-only, above an editable output file.
package layout

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

// step is one pane of a layout: the root its file comes from, where it is
// placed and which side's options and hook it receives.
type step struct {
	root      string
	placement domain.Placement
	side      domain.Side
}

// Policy lays out comparison views for one RootSet.
type Policy struct {
	editor ports.Editor
	roots  domain.RootSet
	hooks  domain.Hooks
}

// NewPolicy creates a Policy for roots. Hooks may be empty.
func NewPolicy(editor ports.Editor, roots domain.RootSet, hooks domain.Hooks) *Policy {
	return &Policy{editor: editor, roots: roots, hooks: hooks}
}

// Open lays out the view for path and returns it with its editable pane.
//
// When first is true the focused container is reused; otherwise a new one is
// created. Each pane gets its options and then its hook before the next pane
// is opened. The first failure aborts the layout and leaves already opened
// panes in place.
func (p *Policy) Open(ctx context.Context, path domain.RelativePath, first bool) (ports.OpenedView, error) {
	placement := domain.PlaceNewContainer
	if first {
		placement = domain.PlaceCurrent
	}

	steps, err := p.steps(placement)
	if err != nil {
		return ports.OpenedView{}, err
	}

	var editable domain.Pane
	for _, s := range steps {
		pane, err := p.editor.OpenPane(ctx, path.In(s.root), s.placement)
		if err != nil {
			return ports.OpenedView{}, zerr.With(err, "path", path.String())
		}
		if err := p.finalize(ctx, pane, s.side); err != nil {
			return ports.OpenedView{}, zerr.With(err, "path", path.String())
		}
		editable = pane
	}

	view, err := p.editor.CurrentView(ctx)
	if err != nil {
		return ports.OpenedView{}, err
	}

	return ports.OpenedView{View: view, Editable: editable}, nil
}

// Mode returns the layout mode of the policy's roots.
func (p *Policy) Mode() domain.Mode {
	return p.roots.Mode()
}

func (p *Policy) steps(first domain.Placement) ([]step, error) {
	switch p.roots.Mode() {
	case domain.ModeTwoWay:
		return []step{
			{root: p.roots.Left(), placement: first, side: domain.SideLeft},
			{root: p.roots.Right(), placement: domain.PlaceVerticalSplit, side: domain.SideRight},
		}, nil
	case domain.ModeThreeWay:
		return []step{
			{root: p.roots.Left(), placement: first, side: domain.SideLeft},
			{root: p.roots.Right(), placement: domain.PlaceVerticalSplit, side: domain.SideLeft},
			{root: p.roots.Output(), placement: domain.PlaceBottomRightSplit, side: domain.SideRight},
		}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownLayoutMode, "cannot lay out view"), "mode", string(p.roots.Mode()))
	}
}

// finalize applies the built-in pane options, then the side's hook.
func (p *Policy) finalize(ctx context.Context, pane domain.Pane, side domain.Side) error {
	if err := p.editor.SetPaneOptions(ctx, pane, domain.OptionsFor(side)); err != nil {
		return err
	}

	hook := p.hooks.For(side)
	if hook == nil {
		return nil
	}
	if err := hook(ctx, pane); err != nil {
		return zerr.With(domain.Classify(domain.ErrHookFailed, err), "side", string(side))
	}
	return nil
}
