// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/piprun/internal/adapters/cas"
	_ "go.trai.ch/piprun/internal/adapters/config"
	_ "go.trai.ch/piprun/internal/adapters/fs"
	_ "go.trai.ch/piprun/internal/adapters/lock"
	_ "go.trai.ch/piprun/internal/adapters/logger"
	_ "go.trai.ch/piprun/internal/adapters/shell"
	_ "go.trai.ch/piprun/internal/adapters/telemetry"
	_ "go.trai.ch/piprun/internal/adapters/virtualenv"
	// Register app and engine nodes.
	_ "go.trai.ch/piprun/internal/app"
	_ "go.trai.ch/piprun/internal/engine/envcache"
)
