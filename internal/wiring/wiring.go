// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bottled/internal/adapters/cas"
	_ "go.trai.ch/bottled/internal/adapters/config"
	_ "go.trai.ch/bottled/internal/adapters/ember"
	_ "go.trai.ch/bottled/internal/adapters/fs"
	_ "go.trai.ch/bottled/internal/adapters/lock"
	_ "go.trai.ch/bottled/internal/adapters/logger"
	_ "go.trai.ch/bottled/internal/adapters/overlay"
	_ "go.trai.ch/bottled/internal/adapters/pnpm"
	_ "go.trai.ch/bottled/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/bottled/internal/app"
	_ "go.trai.ch/bottled/internal/engine/dispatcher"
	_ "go.trai.ch/bottled/internal/engine/reconciler"
	_ "go.trai.ch/bottled/internal/engine/scaffold"
)
