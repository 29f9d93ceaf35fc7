// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/teammap/internal/adapters/config"
	_ "go.trai.ch/teammap/internal/adapters/geojson"
	_ "go.trai.ch/teammap/internal/adapters/geonames"
	_ "go.trai.ch/teammap/internal/adapters/hashindex"
	_ "go.trai.ch/teammap/internal/adapters/logger"
	_ "go.trai.ch/teammap/internal/adapters/lookup"
	_ "go.trai.ch/teammap/internal/adapters/overrides"
	_ "go.trai.ch/teammap/internal/adapters/roster"
	_ "go.trai.ch/teammap/internal/adapters/store"
	// Register app nodes.
	_ "go.trai.ch/teammap/internal/app"
)
