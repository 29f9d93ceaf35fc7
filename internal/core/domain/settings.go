package domain

import "time"

// Settings is the process configuration.
type Settings struct {
	GeoNamesUsername  string        `koanf:"geonames_username"`
	GeoNamesBaseURL   string        `koanf:"geonames_base_url"`
	HTTPTimeout       time.Duration `koanf:"http_timeout"`
	RosterPath        string        `koanf:"roster_path"`
	DatasetPath       string        `koanf:"dataset_path"`
	GeoJSONPath       string        `koanf:"geojson_path"`
	OverridesPath     string        `koanf:"overrides_path"`
	Concurrency       int           `koanf:"concurrency"`
	ExcludedCountries []string      `koanf:"excluded_countries"`
	PictureBaseURL    string        `koanf:"picture_base_url"`
	LogJSON           bool          `koanf:"log_json"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		GeoNamesBaseURL:   "https://secure.geonames.org",
		HTTPTimeout:       30 * time.Second,
		RosterPath:        RosterFileName,
		DatasetPath:       DatasetFileName,
		GeoJSONPath:       GeoJSONFileName,
		Concurrency:       1,
		ExcludedCountries: []string{"RU", "BY", "UA"},
		PictureBaseURL:    "about.gitlab.com/images/team/",
	}
}
