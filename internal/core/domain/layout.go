package domain

const (
	// RosterFileName is the default name of the team roster document.
	RosterFileName = "team.yml"

	// DatasetFileName is the default name of the persisted, resolved dataset.
	DatasetFileName = "team.json"

	// GeoJSONFileName is the default name of the exported feature collection.
	GeoJSONFileName = "team_geo.json"

	// DatasetVersion is the version written to and expected from the dataset file.
	// Bump it whenever the shape or semantics of CacheEntry change.
	DatasetVersion = 10

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
