package test

import (
	"cinelogBackend/auth"
	"cinelogBackend/client"
	"cinelogBackend/domain/collection"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T, userId string) *client.Client {
	t.Helper()

	router, authManager, _ := SetupTestServer(t)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: userId})
	require.NoError(t, err)

	return client.CreateClient(server.URL, token)
}

func TestClientFavorites(t *testing.T) {
	apiClient := setupClient(t, TestUserOne)

	assert.ElementsMatch(t, []int64{101, 202}, apiClient.GetFavorites())
	assert.True(t, apiClient.IsFavorite(101))
	assert.False(t, apiClient.IsFavorite(999))

	assert.True(t, apiClient.AddToFavorites(550))
	assert.True(t, apiClient.IsFavorite(550))

	// Duplicate add fails without breaking state
	assert.False(t, apiClient.AddToFavorites(550))
	assert.True(t, apiClient.IsFavorite(550))

	assert.True(t, apiClient.RemoveFromFavorites(550))
	assert.False(t, apiClient.IsFavorite(550))
}

func TestClientToggleFavorite(t *testing.T) {
	apiClient := setupClient(t, TestUserOne)

	// 101 is seeded as a favorite, two toggles return inverse states
	assert.False(t, apiClient.ToggleFavorite(101))
	assert.True(t, apiClient.ToggleFavorite(101))
	assert.True(t, apiClient.IsFavorite(101))
}

func TestClientCollections(t *testing.T) {
	apiClient := setupClient(t, TestUserOne)

	collections := apiClient.GetCollections()
	require.Len(t, collections, 2)

	created := apiClient.CreateCollection("Road Trip", "For the drive", false)
	require.NotNil(t, created)
	assert.Equal(t, "Road Trip", created.Name)
	assert.Empty(t, created.Movies)

	assert.True(t, apiClient.AddMovieToCollection(created.ID, 550))
	assert.True(t, apiClient.IsMovieInCollection(created.ID, 550))
	assert.False(t, apiClient.IsMovieInCollection(created.ID, 999))

	name := "Long Road Trip"
	updated := apiClient.UpdateCollection(created.ID, collection.CollectionUpdateIn{Name: &name})
	require.NotNil(t, updated)
	assert.Equal(t, "Long Road Trip", updated.Name)
	assert.Equal(t, "For the drive", updated.Description)

	assert.True(t, apiClient.DeleteCollection(created.ID))
	assert.Nil(t, apiClient.GetCollection(created.ID))
}

func TestClientExportImport(t *testing.T) {
	apiClient := setupClient(t, TestUserOne)

	collections := apiClient.GetCollections()
	require.NotEmpty(t, collections)

	var watchlistId string
	for _, coll := range collections {
		if coll.Name == "Watchlist" {
			watchlistId = coll.ID
		}
	}
	require.NotEmpty(t, watchlistId)

	exported := apiClient.ExportCollection(watchlistId)
	require.NotEmpty(t, exported)

	imported := apiClient.ImportCollection(exported)
	require.NotNil(t, imported)
	assert.Equal(t, "Watchlist (Imported)", imported.Name)
	assert.ElementsMatch(t, []int64{101, 102}, imported.Movies)
}

func TestClientWithoutSession_ReadsDefaultToEmpty(t *testing.T) {
	router, _, _ := SetupTestServer(t)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	apiClient := client.CreateClient(server.URL, "")

	assert.Empty(t, apiClient.GetFavorites())
	assert.Empty(t, apiClient.GetCollections())
	assert.False(t, apiClient.IsFavorite(101))
	assert.False(t, apiClient.AddToFavorites(101))
	assert.Nil(t, apiClient.CreateCollection("nope", "", false))
}
