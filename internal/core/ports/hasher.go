package ports

import "go.trai.ch/teammap/internal/core/domain"

// IdentityHasher derives identity keys for roster members.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type IdentityHasher interface {
	// Create computes the full identity key from the member's identity fields.
	Create(member domain.Member) domain.IdentityKey

	// Shorten returns the canonical form stored in the dataset and used for lookups.
	// Shorten(Shorten(k)) == Shorten(k).
	Shorten(key domain.IdentityKey) domain.IdentityKey
}
