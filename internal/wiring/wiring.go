// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/accessors/internal/adapters/classloader"
	_ "go.trai.ch/accessors/internal/adapters/compiler"
	_ "go.trai.ch/accessors/internal/adapters/config"
	_ "go.trai.ch/accessors/internal/adapters/fs"
	_ "go.trai.ch/accessors/internal/adapters/logger"
	_ "go.trai.ch/accessors/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/accessors/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/accessors/internal/app"
)
