package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffdirs/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	log, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	return log, buf
}

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("diff session built in 3 panes") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("root does not exist: /tmp/missing") },
			goldenName: "warn_basic",
		},
		{
			name: "error chain",
			log: func(l *logger.Logger) {
				err := zerr.With(
					zerr.Wrap(
						zerr.Wrap(errors.New("permission denied"), "host interaction failed"),
						"failed to open pane",
					),
					"path", "a.txt",
				)
				l.Error(err)
			},
			goldenName: "error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := newBufferedLogger(t)

			tt.log(log)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	log, buf := newBufferedLogger(t)
	log.SetJSON(true)

	log.Warn("config file is empty: /tmp/config.yaml")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "config file is empty: /tmp/config.yaml", record["msg"])
}

func TestLogger_JSONError(t *testing.T) {
	log, buf := newBufferedLogger(t)
	log.SetJSON(true)

	log.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.SetJSON(true)
	log.Info("first")
	log.SetJSON(false)
	log.Info("second")

	assert.Contains(t, buf.String(), `"msg":"first"`)
	assert.Contains(t, buf.String(), "second\n")
}
