package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "config.yml")

	config := Load(fileName)
	assert.Equal(t, "https://api.themoviedb.org/3", config.Tmdb.ApiUrl)
	assert.Equal(t, uint(3000), config.Server.Port)

	// The defaults were written back and load identically on the next run
	_, err := os.Stat(fileName)
	require.NoError(t, err)

	reloaded := Load(fileName)
	assert.Equal(t, config, reloaded)
}

func TestLoad_ExistingFileOverridesDefaults(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(fileName, []byte("server:\n  port: 9000\n"), 0644))

	config := Load(fileName)
	assert.Equal(t, uint(9000), config.Server.Port)
	assert.Equal(t, "https://api.themoviedb.org/3", config.Tmdb.ApiUrl)
}
