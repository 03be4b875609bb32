package app

import (
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
)

// NewSessionController exposes newController for testing.
func (a *App) NewSessionController(editor ports.Editor, hooks ports.HookResolver, defaults domain.HookConfig) *Controller {
	return a.newController(editor, hooks, defaults)
}

// NewEditorLogger exposes newEditorLogger for testing.
func NewEditorLogger(base ports.Logger, editor ports.Editor) ports.Logger {
	return newEditorLogger(base, editor)
}
