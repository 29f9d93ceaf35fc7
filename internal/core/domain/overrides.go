package domain

// OverrideTable holds the hand-curated exceptions consulted before geocoding.
type OverrideTable struct {
	// Aliases rewrites known-bad locality strings. A nil target means the
	// locality must not be geocoded at all and the country is used instead.
	Aliases map[string]*string

	// Locations short-circuits resolution for "locality|country" keys the
	// geocoding service gets permanently wrong.
	Locations map[string]ResolvedLocation
}

// NewOverrideTable returns an empty table.
func NewOverrideTable() *OverrideTable {
	return &OverrideTable{
		Aliases:   make(map[string]*string),
		Locations: make(map[string]ResolvedLocation),
	}
}

// Merge copies every entry of other into t, replacing existing keys.
func (t *OverrideTable) Merge(other *OverrideTable) {
	if other == nil {
		return
	}
	for k, v := range other.Aliases {
		t.Aliases[k] = v
	}
	for k, v := range other.Locations {
		t.Locations[k] = v
	}
}

// LocationKey returns the key used by the static location table and the per-run memo.
func LocationKey(locality, country string) string {
	return locality + "|" + country
}
