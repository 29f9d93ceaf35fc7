// Package hashindex derives the identity keys that index the dataset.
package hashindex

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/teammap/internal/core/ports"
)

const (
	// SegmentLen is the number of hex characters each identity field contributes.
	SegmentLen = 8

	// ShortLen is the length of a shortened key: the slug and start date segments.
	ShortLen = 2 * SegmentLen
)

var _ ports.IdentityHasher = (*Hasher)(nil)

// Hasher builds prefix-compatible identity keys from slug, start date and name.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Create returns the full key for m. Fields are ordered from most to least stable
// so that a shortened key survives an edit of the name.
func (h *Hasher) Create(m domain.Member) domain.IdentityKey {
	var b strings.Builder
	b.Grow(3 * SegmentLen)
	for _, field := range []string{m.Slug, m.StartDate, m.Name} {
		b.WriteString(segment(field))
	}
	return domain.IdentityKey(b.String())
}

// Shorten returns the lookup form of key. Keys already at or below ShortLen are returned as is.
func (h *Hasher) Shorten(key domain.IdentityKey) domain.IdentityKey {
	if len(key) <= ShortLen {
		return key
	}
	return key[:ShortLen]
}

func segment(field string) string {
	sum := xxhash.Sum64String(strings.TrimSpace(field))
	return fmt.Sprintf("%08x", sum>>32)
}
