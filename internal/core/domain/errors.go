package domain

import "go.trai.ch/zerr"

var (
	// ErrGeocoderService is returned when the geocoding service answers with an error status.
	ErrGeocoderService = zerr.New("geocoding service raised an error")

	// ErrGeocoderRequestFailed is returned when a request to the geocoding service cannot be completed.
	ErrGeocoderRequestFailed = zerr.New("failed to make geocoding request")

	// ErrGeocoderParseFailed is returned when a geocoding response cannot be parsed.
	ErrGeocoderParseFailed = zerr.New("failed to parse geocoding response")

	// ErrMissingUsername is returned when a geocoding request is attempted without an account name.
	ErrMissingUsername = zerr.New("geonames username must be set (GEONAMES_USERNAME)")

	// ErrLocationNotFound is returned when neither latitude nor longitude could be resolved.
	ErrLocationNotFound = zerr.New("could not find location")

	// ErrMemberResolutionFailed is returned when the location of a single member cannot be resolved.
	ErrMemberResolutionFailed = zerr.New("could not load location for member")

	// ErrDatasetVersionMismatch is returned when the persisted dataset was written by another version.
	ErrDatasetVersionMismatch = zerr.New("dataset version mismatch")

	// ErrDatasetReadFailed is returned when the dataset file cannot be read.
	ErrDatasetReadFailed = zerr.New("failed to read dataset")

	// ErrDatasetUnmarshalFailed is returned when the dataset file cannot be decoded.
	ErrDatasetUnmarshalFailed = zerr.New("failed to unmarshal dataset")

	// ErrDatasetMarshalFailed is returned when the dataset cannot be encoded.
	ErrDatasetMarshalFailed = zerr.New("failed to marshal dataset")

	// ErrDatasetWriteFailed is returned when the dataset file cannot be written.
	ErrDatasetWriteFailed = zerr.New("failed to write dataset")

	// ErrRosterReadFailed is returned when the roster file cannot be read.
	ErrRosterReadFailed = zerr.New("failed to read roster")

	// ErrRosterParseFailed is returned when the roster file cannot be parsed.
	ErrRosterParseFailed = zerr.New("failed to parse roster")

	// ErrOverridesReadFailed is returned when an override file cannot be read.
	ErrOverridesReadFailed = zerr.New("failed to read overrides")

	// ErrOverridesParseFailed is returned when an override file cannot be parsed.
	ErrOverridesParseFailed = zerr.New("failed to parse overrides")

	// ErrLookupDataInvalid is returned when the embedded lookup tables are malformed.
	ErrLookupDataInvalid = zerr.New("invalid lookup table data")

	// ErrSettingsLoadFailed is returned when the settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrGeoJSONWriteFailed is returned when the feature collection cannot be written.
	ErrGeoJSONWriteFailed = zerr.New("failed to write geojson")
)
