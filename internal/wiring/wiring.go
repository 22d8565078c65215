// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/brief/internal/adapters/cache"
	_ "go.trai.ch/brief/internal/adapters/chunker"
	_ "go.trai.ch/brief/internal/adapters/config"
	_ "go.trai.ch/brief/internal/adapters/fs"
	_ "go.trai.ch/brief/internal/adapters/imports"
	_ "go.trai.ch/brief/internal/adapters/logger"
	_ "go.trai.ch/brief/internal/adapters/scorer"
	_ "go.trai.ch/brief/internal/adapters/store"
	_ "go.trai.ch/brief/internal/adapters/telemetry"
	_ "go.trai.ch/brief/internal/adapters/templates"
	_ "go.trai.ch/brief/internal/adapters/tracker"
	// Register app and engine nodes.
	_ "go.trai.ch/brief/internal/app"
	_ "go.trai.ch/brief/internal/engine/orchestrator"
)
