package app

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/ports"
)

var _ ports.Logger = (*editorLogger)(nil)

// editorLogger logs to base and also shows warnings in the editor, where the
// user started the session. A warning the editor cannot show is logged as an error.
type editorLogger struct {
	base   ports.Logger
	editor ports.Editor
}

func newEditorLogger(base ports.Logger, editor ports.Editor) *editorLogger {
	return &editorLogger{base: base, editor: editor}
}

func (l *editorLogger) Info(msg string) {
	l.base.Info(msg)
}

func (l *editorLogger) Warn(msg string) {
	l.base.Warn(msg)
	if err := l.editor.ReportWarning(context.Background(), msg); err != nil {
		l.base.Error(err)
	}
}

func (l *editorLogger) Error(err error) {
	l.base.Error(err)
}
