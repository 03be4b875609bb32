// Package config loads the diffdirs user configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{logger: logger, fs: fsys}
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, domain.DefaultConfigRelPath)
}

// Load reads the configuration.
//
// The file is path when set, else $DIFFDIRS_CONFIG, else DefaultPath. Only a
// missing default file is tolerated and yields an empty configuration.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(domain.ConfigEnvVar)
	}
	if path == "" {
		path = DefaultPath()
		explicit = false
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, iofs.ErrNotExist) {
			return &domain.Config{}, nil
		}
		return nil, zerr.With(domain.Classify(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			l.logger.Warn("config file is empty: " + path)
			return &domain.Config{}, nil
		}
		return nil, zerr.With(domain.Classify(domain.ErrConfigParseFailed, err), "path", path)
	}

	return file.toDomain(), nil
}
