package ports

import "go.trai.ch/teammap/internal/core/domain"

// OverrideLoader provides the hand-curated alias and location tables.
//
//go:generate mockgen -source=overrides.go -destination=mocks/mock_overrides.go -package=mocks
type OverrideLoader interface {
	// Load returns the built-in tables merged with the file at path.
	// An empty path returns the built-in tables only.
	Load(path string) (*domain.OverrideTable, error)
}
