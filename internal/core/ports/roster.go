package ports

import "go.trai.ch/teammap/internal/core/domain"

// RosterLoader reads the team roster.
//
//go:generate mockgen -source=roster.go -destination=mocks/mock_roster.go -package=mocks
type RosterLoader interface {
	// Load returns the members in roster order.
	Load(path string) ([]domain.Member, error)
}
