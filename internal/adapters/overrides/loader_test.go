package overrides_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/teammap/internal/adapters/overrides"
	"go.trai.ch/teammap/internal/core/domain"
)

func TestLoader_Load_Defaults(t *testing.T) {
	table, err := overrides.NewLoader().Load("")
	require.NoError(t, err)

	alias, ok := table.Aliases["Alrington, Texas"]
	require.True(t, ok)
	require.NotNil(t, alias)
	assert.Equal(t, "Arlington, Texas", *alias)

	emea, ok := table.Aliases["EMEA"]
	require.True(t, ok, "null aliases must be kept as entries")
	assert.Nil(t, emea)

	loc, ok := table.Locations[domain.LocationKey("Netherlands", "Rotterdam")]
	require.True(t, ok)
	assert.Equal(t, domain.ResolvedLocation{
		Location:    domain.Coordinates{51.922, 4.479},
		CountryCode: "NL",
		Locality:    "Rotterdam",
		Country:     "The Netherlands",
	}, loc)

	ireland := table.Locations["EMEA|Ireland"]
	assert.Empty(t, ireland.Locality)
	assert.Equal(t, "IE", ireland.CountryCode)
}

func TestLoader_Load_UserFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `
aliases:
  "EMEA": "Dublin"
  "Bay Area": "San Francisco, CA"
locations:
  "Atlantis|Greece":
    location: [36.4, 25.4]
    countryCode: GR
    locality: Santorini
    country: Greece
`
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	table, err := overrides.NewLoader().Load(path)
	require.NoError(t, err)

	require.NotNil(t, table.Aliases["EMEA"])
	assert.Equal(t, "Dublin", *table.Aliases["EMEA"])
	require.NotNil(t, table.Aliases["Bay Area"])
	assert.Equal(t, "Santorini", table.Locations["Atlantis|Greece"].Locality)
	assert.Contains(t, table.Locations, "APAC|Singapore")
}

func TestLoader_Load_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := overrides.NewLoader().Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrOverridesReadFailed.Error())

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases: [1, 2\n"), domain.FilePerm))

	_, err = overrides.NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrOverridesParseFailed.Error())
}
