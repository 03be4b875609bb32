package app_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffdirs/internal/adapters/fs"
	"go.trai.ch/diffdirs/internal/adapters/telemetry"
	"go.trai.ch/diffdirs/internal/app"
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, loader *mocks.MockConfigLoader) *app.App {
	t.Helper()
	log := quietLogger(t)
	return app.New(
		loader,
		log,
		fs.NewResolverFactory(fs.NewWalker()),
		fs.NewComparer(),
		telemetry.NewNoOpTracer(),
	)
}

func TestApp_Files(t *testing.T) {
	tmp := t.TempDir()
	left := filepath.Join(tmp, "left")
	right := filepath.Join(tmp, "right")
	writeTree(t, left, "a.txt", "same.txt", "changed.txt")
	writeTree(t, right, "same.txt", "z.txt")
	require.NoError(t, os.WriteFile(filepath.Join(right, "changed.txt"), []byte("other"), 0o600))

	a := newTestApp(t, mocks.NewMockConfigLoader(gomock.NewController(t)))

	t.Run("paths", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, a.Files(t.Context(), &buf, left, right, app.FilesOptions{}))
		assert.Equal(t, "a.txt\nchanged.txt\nsame.txt\nz.txt\n", buf.String())
	})

	t.Run("status", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, a.Files(t.Context(), &buf, left, right, app.FilesOptions{Status: true}))
		assert.Equal(t,
			"only-left\ta.txt\n"+
				"modified\tchanged.txt\n"+
				"identical\tsame.txt\n"+
				"only-right\tz.txt\n",
			buf.String())
	})
}

func TestApp_Plan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	fixtures, err := filepath.Abs("testdata")
	require.NoError(t, err)
	t.Chdir(t.TempDir())
	writeTree(t, "left", "a.txt", "sub/b.txt")
	writeTree(t, "right", "a.txt", "c.txt")
	require.NoError(t, os.Mkdir("out", 0o750))

	loader := mocks.NewMockConfigLoader(gomock.NewController(t))
	loader.EXPECT().Load("").Return(&domain.Config{
		Hooks: domain.HookConfig{OnLeftPaneFinalized: "require('diff').left"},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, newTestApp(t, loader).Plan(t.Context(), &buf, []string{"left", "right", "out"}))

	g := goldie.New(t, goldie.WithFixtureDir(fixtures))
	g.Assert(t, "plan_three_way", buf.Bytes())
}

func TestApp_Plan_ArgumentCount(t *testing.T) {
	loader := mocks.NewMockConfigLoader(gomock.NewController(t))
	loader.EXPECT().Load("").Return(&domain.Config{}, nil)

	var buf bytes.Buffer
	err := newTestApp(t, loader).Plan(t.Context(), &buf, []string{"a", "b", "c", "d"})

	require.ErrorIs(t, err, domain.ErrArgumentCount)
	assert.Empty(t, buf.String())
}

func TestApp_Plan_ConfigError(t *testing.T) {
	loader := mocks.NewMockConfigLoader(gomock.NewController(t))
	loader.EXPECT().Load("/etc/diffdirs.yaml").Return(nil, domain.ErrConfigParseFailed)

	a := newTestApp(t, loader)
	a.SetConfigPath("/etc/diffdirs.yaml")
	err := a.Plan(t.Context(), &bytes.Buffer{}, []string{"a", "b"})

	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Manifest(t *testing.T) {
	a := newTestApp(t, mocks.NewMockConfigLoader(gomock.NewController(t)))

	var buf bytes.Buffer
	require.NoError(t, a.Manifest(&buf, "diffdirs"))

	assert.Contains(t, buf.String(), "DiffDirs")
	assert.Contains(t, buf.String(), "diffdirs")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestApp_Files_WriteError(t *testing.T) {
	tmp := t.TempDir()
	writeTree(t, filepath.Join(tmp, "left"), "a.txt")

	a := newTestApp(t, mocks.NewMockConfigLoader(gomock.NewController(t)))
	err := a.Files(t.Context(), failingWriter{}, filepath.Join(tmp, "left"), filepath.Join(tmp, "right"), app.FilesOptions{})

	require.EqualError(t, err, "broken pipe")
}
