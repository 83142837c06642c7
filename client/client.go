// Package client is an HTTP facade over the Cinelog API meant for UI code.
// Read methods coerce any transport or HTTP error to empty or false defaults
// and write methods report a plain boolean, so callers never handle errors or
// panics. Failures are logged instead.
package client

import (
	"bytes"
	"cinelogBackend/domain/collection"
	"cinelogBackend/domain/favorite"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

type Client struct {
	baseUrl     string
	accessToken string
	httpClient  *http.Client
}

func CreateClient(baseUrl string, accessToken string) *Client {
	return &Client{
		baseUrl:     baseUrl,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) GetFavorites() []int64 {
	result := favorite.ListOut{}
	if err := c.request(http.MethodGet, "/api/favorites", nil, &result); err != nil {
		log.Error("Failed to get favorites", "error", err)
		return []int64{}
	}

	return result.Favorites
}

func (c *Client) AddToFavorites(movieId int64) bool {
	err := c.request(http.MethodPost, "/api/favorites", favorite.FavoriteIn{MovieID: &movieId}, nil)
	if err != nil {
		log.Error("Failed to add to favorites", "movieId", movieId, "error", err)
		return false
	}

	return true
}

func (c *Client) RemoveFromFavorites(movieId int64) bool {
	err := c.request(http.MethodDelete, fmt.Sprintf("/api/favorites?movieId=%d", movieId), nil, nil)
	if err != nil {
		log.Error("Failed to remove from favorites", "movieId", movieId, "error", err)
		return false
	}

	return true
}

func (c *Client) IsFavorite(movieId int64) bool {
	result := favorite.StatusOut{}
	if err := c.request(http.MethodGet, fmt.Sprintf("/api/favorites/%d", movieId), nil, &result); err != nil {
		log.Error("Failed to check favorite status", "movieId", movieId, "error", err)
		return false
	}

	return result.IsFavorite
}

// ToggleFavorite Returns the resulting favorite state. The flip happens in one
// server-side operation, so two sessions toggling at once cannot double-add.
func (c *Client) ToggleFavorite(movieId int64) bool {
	result := favorite.ToggleOut{}
	err := c.request(http.MethodPost, fmt.Sprintf("/api/favorites/%d/toggle", movieId), nil, &result)
	if err != nil {
		log.Error("Failed to toggle favorite", "movieId", movieId, "error", err)
		return false
	}

	return result.IsFavorite
}

func (c *Client) GetCollections() []collection.CollectionOut {
	result := collection.ListOut{}
	if err := c.request(http.MethodGet, "/api/collections", nil, &result); err != nil {
		log.Error("Failed to get collections", "error", err)
		return []collection.CollectionOut{}
	}

	return result.Collections
}

func (c *Client) GetCollection(collectionId string) *collection.CollectionOut {
	result := collection.ItemOut{}
	path := "/api/collections/" + url.PathEscape(collectionId)
	if err := c.request(http.MethodGet, path, nil, &result); err != nil {
		log.Error("Failed to get collection", "collectionId", collectionId, "error", err)
		return nil
	}

	return &result.Collection
}

func (c *Client) CreateCollection(name string, description string, isPublic bool) *collection.CollectionOut {
	result := collection.ItemOut{}
	payload := collection.CollectionIn{
		Name:        name,
		Description: &description,
		IsPublic:    &isPublic,
	}
	if err := c.request(http.MethodPost, "/api/collections", payload, &result); err != nil {
		log.Error("Failed to create collection", "name", name, "error", err)
		return nil
	}

	return &result.Collection
}

func (c *Client) UpdateCollection(collectionId string, updates collection.CollectionUpdateIn) *collection.CollectionOut {
	result := collection.ItemOut{}
	path := "/api/collections/" + url.PathEscape(collectionId)
	if err := c.request(http.MethodPut, path, updates, &result); err != nil {
		log.Error("Failed to update collection", "collectionId", collectionId, "error", err)
		return nil
	}

	return &result.Collection
}

func (c *Client) DeleteCollection(collectionId string) bool {
	path := "/api/collections/" + url.PathEscape(collectionId)
	if err := c.request(http.MethodDelete, path, nil, nil); err != nil {
		log.Error("Failed to delete collection", "collectionId", collectionId, "error", err)
		return false
	}

	return true
}

func (c *Client) AddMovieToCollection(collectionId string, movieId int64) bool {
	path := "/api/collections/" + url.PathEscape(collectionId) + "/movies"
	err := c.request(http.MethodPost, path, collection.CollectionMovieIn{MovieID: &movieId}, nil)
	if err != nil {
		log.Error("Failed to add movie to collection", "collectionId", collectionId, "movieId", movieId, "error", err)
		return false
	}

	return true
}

func (c *Client) RemoveMovieFromCollection(collectionId string, movieId int64) bool {
	path := fmt.Sprintf("/api/collections/%s/movies?movieId=%d", url.PathEscape(collectionId), movieId)
	if err := c.request(http.MethodDelete, path, nil, nil); err != nil {
		log.Error("Failed to remove movie from collection", "collectionId", collectionId, "movieId", movieId, "error", err)
		return false
	}

	return true
}

func (c *Client) IsMovieInCollection(collectionId string, movieId int64) bool {
	result := collection.MovieStatusOut{}
	path := fmt.Sprintf("/api/collections/%s/movies/%d", url.PathEscape(collectionId), movieId)
	if err := c.request(http.MethodGet, path, nil, &result); err != nil {
		log.Error("Failed to check collection membership", "collectionId", collectionId, "movieId", movieId, "error", err)
		return false
	}

	return result.IsInCollection
}

func (c *Client) ExportCollection(collectionId string) string {
	result := collection.ExportOut{}
	path := "/api/collections/" + url.PathEscape(collectionId) + "/export"
	if err := c.request(http.MethodGet, path, nil, &result); err != nil {
		log.Error("Failed to export collection", "collectionId", collectionId, "error", err)
		return ""
	}

	return result.Export
}

func (c *Client) ImportCollection(data string) *collection.CollectionOut {
	result := collection.ItemOut{}
	if err := c.request(http.MethodPost, "/api/import/collections", collection.ImportIn{Data: data}, &result); err != nil {
		log.Error("Failed to import collection", "error", err)
		return nil
	}

	return &result.Collection
}

func (c *Client) request(method string, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	request, err := http.NewRequest(method, c.baseUrl+path, body)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		request.AddCookie(&http.Cookie{Name: "accessToken", Value: c.accessToken})
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode >= http.StatusBadRequest {
		failure := struct {
			Message string `json:"message"`
		}{}
		if err := json.NewDecoder(response.Body).Decode(&failure); err == nil && failure.Message != "" {
			return fmt.Errorf("HTTP %d: %s", response.StatusCode, failure.Message)
		}

		return fmt.Errorf("HTTP %d", response.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(response.Body).Decode(out)
}
