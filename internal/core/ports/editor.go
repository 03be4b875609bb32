// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=editor.go -destination=mocks/mock_editor.go -package=mocks

// ViewHandle is a weak reference to a comparison view owned by the editor.
// The view may disappear at any time through user action; validity must be
// queried on every use and never cached.
type ViewHandle interface {
	// ID returns the editor identifier of the view.
	ID() domain.ViewID
	// IsValid reports whether the view still exists in the editor.
	IsValid(ctx context.Context) (bool, error)
	// Focus makes the view the active container.
	Focus(ctx context.Context) error
}

// OpenedView is the result of laying out one path: the container holding the
// comparison and the pane the user edits.
type OpenedView struct {
	View     ViewHandle
	Editable domain.Pane
}

// Editor is the narrow set of host editor primitives the diff session consumes.
//
// Every method changes or reads host state synchronously. Opening a pane always
// moves focus to it.
type Editor interface {
	// CurrentView returns a handle to the focused container.
	CurrentView(ctx context.Context) (ViewHandle, error)
	// OpenPane opens file at the given placement and focuses the new pane.
	OpenPane(ctx context.Context, file string, placement domain.Placement) (domain.Pane, error)
	// SetPaneOptions applies the built-in attributes to a pane.
	SetPaneOptions(ctx context.Context, pane domain.Pane, opts domain.PaneOptions) error
	// ReplaceNavigationList replaces the host's navigation list with entries.
	ReplaceNavigationList(ctx context.Context, entries []domain.NavigationEntry) error
	// RegisterNavigationKeymaps installs the previous/next bindings over the navigation list.
	RegisterNavigationKeymaps(ctx context.Context) error
	// ReportError shows an error message to the user.
	ReportError(ctx context.Context, message string) error
	// ReportWarning shows a non-fatal message to the user.
	ReportWarning(ctx context.Context, message string) error
	// AbsPath resolves path against the editor's working directory.
	AbsPath(ctx context.Context, path string) (string, error)
}

// HookResolver turns textual hook specifications into callable pane hooks.
type HookResolver interface {
	// ResolveHook returns the hook for spec. An empty spec resolves to a nil hook.
	ResolveHook(spec string) (domain.PaneHook, error)
}
