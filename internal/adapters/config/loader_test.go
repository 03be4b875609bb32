package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffdirs/internal/adapters/config"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const hooksYAML = `
hooks:
  on_left_pane_finalized: "require('my.diff').left"
  on_right_pane_finalized: "require('my.diff').right"
`

// useConfigHome points the XDG config home at dir for the duration of the test.
func useConfigHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(domain.ConfigEnvVar, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	useConfigHome(t, "/xdg")
	ctrl := gomock.NewController(t)

	fsys := fstest.MapFS{
		"work/diffdirs.yaml": {Data: []byte(hooksYAML)},
	}
	loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), config.NewMapFSAdapter("/", fsys))

	cfg, err := loader.Load("/work/diffdirs.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.HookConfig{
		OnLeftPaneFinalized:  "require('my.diff').left",
		OnRightPaneFinalized: "require('my.diff').right",
	}, cfg.Hooks)
}

func TestLoader_Load_Precedence(t *testing.T) {
	fsys := fstest.MapFS{
		"flag.yaml":                {Data: []byte("hooks:\n  on_left_pane_finalized: flag\n")},
		"env.yaml":                 {Data: []byte("hooks:\n  on_left_pane_finalized: env\n")},
		"xdg/diffdirs/config.yaml": {Data: []byte("hooks:\n  on_left_pane_finalized: xdg\n")},
	}

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flag wins", "/flag.yaml", "/env.yaml", "flag"},
		{"env before default", "", "/env.yaml", "env"},
		{"default", "", "", "xdg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfigHome(t, "/xdg")
			t.Setenv(domain.ConfigEnvVar, tt.env)
			ctrl := gomock.NewController(t)

			loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), config.NewMapFSAdapter("/", fsys))
			cfg, err := loader.Load(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Hooks.OnLeftPaneFinalized)
		})
	}
}

func TestLoader_Load_MissingDefaultIsEmpty(t *testing.T) {
	useConfigHome(t, "/xdg")
	ctrl := gomock.NewController(t)

	loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), config.NewMapFSAdapter("/", fstest.MapFS{}))
	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{}, cfg)
}

func TestLoader_Load_MissingExplicitFails(t *testing.T) {
	useConfigHome(t, "/xdg")
	ctrl := gomock.NewController(t)
	loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), config.NewMapFSAdapter("/", fstest.MapFS{}))

	_, err := loader.Load("/missing.yaml")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)

	t.Setenv(domain.ConfigEnvVar, "/also-missing.yaml")
	_, err = loader.Load("")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "hooks: [unterminated"},
		{"unknown key", "hooks:\n  on_middle_pane_finalized: x\n"},
		{"wrong type", "hooks: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfigHome(t, "/xdg")
			ctrl := gomock.NewController(t)
			fsys := fstest.MapFS{"bad.yaml": {Data: []byte(tt.content)}}
			loader := config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), config.NewMapFSAdapter("/", fsys))

			_, err := loader.Load("/bad.yaml")
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrConfigParseFailed)
		})
	}
}

func TestLoader_Load_EmptyFileWarns(t *testing.T) {
	useConfigHome(t, "/xdg")
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("config file is empty: /empty.yaml").Times(1)

	fsys := fstest.MapFS{"empty.yaml": {Data: []byte("")}}
	loader := config.NewLoaderWithFS(mockLogger, config.NewMapFSAdapter("/", fsys))

	cfg, err := loader.Load("/empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{}, cfg)
}

func TestLoader_Load_OSFS(t *testing.T) {
	home := t.TempDir()
	useConfigHome(t, home)
	ctrl := gomock.NewController(t)

	path := filepath.Join(home, filepath.FromSlash(domain.DefaultConfigRelPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(hooksYAML), 0o600))

	assert.Equal(t, path, config.DefaultPath())

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load("")
	require.NoError(t, err)
	assert.Equal(t, "require('my.diff').right", cfg.Hooks.OnRightPaneFinalized)
}
