package headless

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ViewHandle = (*view)(nil)

type view struct {
	editor *Editor
	id     domain.ViewID
}

func (v *view) ID() domain.ViewID { return v.id }

func (v *view) IsValid(_ context.Context) (bool, error) {
	return v.editor.findContainer(v.id) != nil, nil
}

func (v *view) Focus(_ context.Context) error {
	if err := v.editor.fail(OpFocus); err != nil {
		return err
	}
	c := v.editor.findContainer(v.id)
	if c == nil {
		return hostError(OpFocus, zerr.With(errInvalidView, "view", int(v.id)))
	}
	v.editor.current = c
	return nil
}

// ViewState is a snapshot of one container and its panes, in opening order.
type ViewState struct {
	ID    domain.ViewID
	Panes []PaneState
}

// Views returns a snapshot of all open containers in creation order.
func (e *Editor) Views() []ViewState {
	out := make([]ViewState, 0, len(e.containers))
	for _, c := range e.containers {
		vs := ViewState{ID: c.id, Panes: make([]PaneState, 0, len(c.panes))}
		for _, p := range c.panes {
			vs.Panes = append(vs.Panes, *p)
		}
		out = append(out, vs)
	}
	return out
}

// Current returns the focused container.
func (e *Editor) Current() domain.ViewID { return e.current.id }

// PanesOpened counts successful OpenPane requests.
func (e *Editor) PanesOpened() int { return e.panesOpened }

// ContainersCreated counts containers opened through PlaceNewContainer.
func (e *Editor) ContainersCreated() int { return e.containersCreated }

// Navigation returns the last published navigation list.
func (e *Editor) Navigation() []domain.NavigationEntry { return e.navigation }

// NavigationPublishes counts ReplaceNavigationList requests.
func (e *Editor) NavigationPublishes() int { return e.publishes }

// KeymapRegistrations counts RegisterNavigationKeymaps requests.
func (e *Editor) KeymapRegistrations() int { return e.keymaps }

// Reports returns every message passed to ReportError.
func (e *Editor) Reports() []string { return e.reports }

// Warnings returns every message passed to ReportWarning.
func (e *Editor) Warnings() []string { return e.warnings }

// HookCalls returns every hook invocation in order.
func (e *Editor) HookCalls() []HookCall { return e.hookCalls }
