// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/diffdirs/internal/adapters/config"
	_ "go.trai.ch/diffdirs/internal/adapters/fs"
	_ "go.trai.ch/diffdirs/internal/adapters/logger"
	_ "go.trai.ch/diffdirs/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/diffdirs/internal/app"
)
