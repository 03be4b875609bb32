package session

import (
	"context"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
)

// Publisher accumulates navigation entries during a build and publishes them
// as one list, replacing whatever the editor held before.
type Publisher struct {
	editor  ports.Editor
	entries []domain.NavigationEntry
}

// NewPublisher creates an empty Publisher.
func NewPublisher(editor ports.Editor) *Publisher {
	return &Publisher{editor: editor}
}

// Add appends the entry for the editable pane opened for path.
func (p *Publisher) Add(path domain.RelativePath, editable domain.Pane) {
	p.entries = append(p.entries, domain.NavigationEntry{
		Buffer:   editable.Buffer,
		Filename: editable.File,
		Text:     path.String(),
	})
}

// Entries returns the accumulated entries.
func (p *Publisher) Entries() []domain.NavigationEntry {
	return p.entries
}

// Commit replaces the editor's navigation list with the accumulated entries.
func (p *Publisher) Commit(ctx context.Context) error {
	entries := p.entries
	if entries == nil {
		entries = []domain.NavigationEntry{}
	}
	return p.editor.ReplaceNavigationList(ctx, entries)
}
