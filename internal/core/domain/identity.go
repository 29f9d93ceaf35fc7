package domain

// IdentityKey identifies a member across runs.
//
// Keys are compared by prefix: a shortened key stored in the dataset matches
// every full key it is a prefix of. This is a heuristic. Two distinct members
// may collide if one key happens to be a prefix of the other; for a small,
// hand-curated roster this is accepted.
type IdentityKey string

// String returns the key as a plain string.
func (k IdentityKey) String() string {
	return string(k)
}

// Compatible reports whether the shorter of the two keys is a prefix of the longer one.
// Empty keys are never compatible.
func (k IdentityKey) Compatible(other IdentityKey) bool {
	n := min(len(k), len(other))
	if n == 0 {
		return false
	}
	return k[:n] == other[:n]
}
