package ports

import "go.trai.ch/diffdirs/internal/core/domain"

// ConfigLoader defines the interface for loading the user configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path selects the
	// default location; a missing default file yields an empty configuration.
	Load(path string) (*domain.Config, error)
}
