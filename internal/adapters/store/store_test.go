package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/teammap/internal/adapters/store"
	"go.trai.ch/teammap/internal/core/domain"
)

func sampleDataset() domain.Dataset {
	return domain.Dataset{
		Version: domain.DatasetVersion,
		Team: []domain.CacheEntry{
			{
				Key:         "0123456789abcdef",
				Slug:        "jane",
				Name:        "Jane",
				Location:    domain.NewCoordinates(30.267, -97.743),
				CountryCode: "US",
				StateCode:   "TX",
				Locality:    "Austin",
				Country:     "USA",
				Picture:     "https://example.com/jane.jpg",
			},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", domain.DatasetFileName)
	s := store.NewStore()

	require.NoError(t, s.Save(path, sampleDataset()))

	got, err := s.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleDataset(), *got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestStore_Save_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DatasetFileName)
	s := store.NewStore()

	require.NoError(t, s.Save(path, domain.Dataset{Version: domain.DatasetVersion}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"version\": 10,\n  \"team\": []\n}\n", string(data))
}

func TestStore_Load_Missing(t *testing.T) {
	s := store.NewStore()

	got, err := s.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_VersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DatasetFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 9, "team": []}`), domain.FilePerm))

	got, err := store.NewStore().Load(path)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), domain.ErrDatasetVersionMismatch.Error())
}

func TestStore_Load_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DatasetFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"version":`), domain.FilePerm))

	got, err := store.NewStore().Load(path)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), domain.ErrDatasetUnmarshalFailed.Error())
}

func TestStore_Save_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DatasetFileName)
	s := store.NewStore()

	require.NoError(t, s.Save(path, sampleDataset()))
	require.NoError(t, s.Save(path, domain.Dataset{Version: domain.DatasetVersion}))

	got, err := s.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Team)
}
