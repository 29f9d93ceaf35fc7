// Package reconcile matches a previous dataset against the current roster.
package reconcile

import "go.trai.ch/teammap/internal/core/domain"

// Result is the outcome of a reconciliation.
type Result struct {
	// Retained indexes the entries still matched by a current member by their stored key.
	Retained map[domain.IdentityKey]domain.CacheEntry

	// Evicted lists the entries without a matching member, in dataset order.
	Evicted []domain.CacheEntry
}

// Reconcile keeps every previous entry whose key is compatible with the key
// of at least one current member and evicts the rest.
func Reconcile(previous []domain.CacheEntry, current []domain.Member) Result {
	res := Result{
		Retained: make(map[domain.IdentityKey]domain.CacheEntry, len(previous)),
	}

	for _, entry := range previous {
		if matchesAny(entry.Key, current) {
			res.Retained[entry.Key] = entry
			continue
		}
		res.Evicted = append(res.Evicted, entry)
	}

	return res
}

// Names returns the display names of entries.
func Names(entries []domain.CacheEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func matchesAny(key domain.IdentityKey, members []domain.Member) bool {
	for _, m := range members {
		if key.Compatible(m.Key) {
			return true
		}
	}
	return false
}
