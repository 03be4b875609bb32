package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/diffdirs/internal/app"
	_ "go.trai.ch/diffdirs/internal/wiring"
)

func TestNewApp_Success(t *testing.T) {
	components, err := app.NewApp(t.Context())
	require.NoError(t, err)

	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
