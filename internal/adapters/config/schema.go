package config

import "go.trai.ch/diffdirs/internal/core/domain"

// File represents the structure of the diffdirs config.yaml file.
type File struct {
	Hooks HooksDTO `yaml:"hooks"`
}

// HooksDTO holds the hook expressions of the config file.
type HooksDTO struct {
	OnLeftPaneFinalized  string `yaml:"on_left_pane_finalized"`
	OnRightPaneFinalized string `yaml:"on_right_pane_finalized"`
}

func (f *File) toDomain() *domain.Config {
	return &domain.Config{
		Hooks: domain.HookConfig{
			OnLeftPaneFinalized:  f.Hooks.OnLeftPaneFinalized,
			OnRightPaneFinalized: f.Hooks.OnRightPaneFinalized,
		},
	}
}
