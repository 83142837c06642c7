package storage

import (
	"cinelogBackend/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorageManager(t *testing.T) (StorageManager, string) {
	t.Helper()

	library := t.TempDir()
	backup := filepath.Join(t.TempDir(), "backup")

	manager := CreateStorageManager(&config.CinelogConfig{
		FileSystem: config.FilesystemConfig{
			Library: library,
			Backup:  backup,
		},
	})

	return manager, library
}

func TestFavoritesRoundTrip(t *testing.T) {
	manager, _ := createTestStorageManager(t)

	require.NoError(t, manager.WriteFavorites([]int64{101, 202, 303}))

	movieIds := make([]int64, 0)
	require.NoError(t, manager.ReadFavorites(&movieIds))
	assert.Equal(t, []int64{101, 202, 303}, movieIds)
}

func TestReadFavorites_AbsentFileIsEmpty(t *testing.T) {
	manager, _ := createTestStorageManager(t)

	movieIds := make([]int64, 0)
	require.NoError(t, manager.ReadFavorites(&movieIds))
	assert.Empty(t, movieIds)
}

func TestCollectionsRoundTrip(t *testing.T) {
	manager, _ := createTestStorageManager(t)

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	stored := []StoredCollection{{
		ID:        "1717243200000123456789",
		Name:      "Watchlist",
		Movies:    []int64{101, 102},
		CreatedAt: created,
		UpdatedAt: created,
	}}
	require.NoError(t, manager.WriteCollections(stored))

	collections := make([]StoredCollection, 0)
	require.NoError(t, manager.ReadCollections(&collections))
	require.Len(t, collections, 1)
	assert.Equal(t, "Watchlist", collections[0].Name)
	assert.Equal(t, []int64{101, 102}, collections[0].Movies)
	assert.True(t, collections[0].CreatedAt.Equal(created))
}

func TestReadFavorites_CorruptFile(t *testing.T) {
	manager, library := createTestStorageManager(t)

	require.NoError(t, os.WriteFile(filepath.Join(library, "favorites.json"), []byte("not json"), 0640))

	movieIds := make([]int64, 0)
	assert.Error(t, manager.ReadFavorites(&movieIds))
}

func TestBackupOnStartup(t *testing.T) {
	library := t.TempDir()
	backup := filepath.Join(t.TempDir(), "backup")

	require.NoError(t, os.WriteFile(filepath.Join(library, "favorites.json"), []byte("[101]"), 0640))

	CreateStorageManager(&config.CinelogConfig{
		FileSystem: config.FilesystemConfig{
			Library: library,
			Backup:  backup,
		},
	})

	data, err := os.ReadFile(filepath.Join(backup, "favorites.json"))
	require.NoError(t, err)
	assert.Equal(t, "[101]", string(data))
}
