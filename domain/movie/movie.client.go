package movie

import (
	"cinelogBackend/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

type (
	// TmdbClient Outbound access to the TMDB v3 API. Without an API key every
	// method serves deterministic demo data; upstream failures also fall back to
	// demo data so browsing keeps working offline.
	TmdbClient interface {
		Popular(ctx context.Context, page int) (*PageOut, error)
		TopRated(ctx context.Context, page int) (*PageOut, error)
		NowPlaying(ctx context.Context, page int) (*PageOut, error)
		Upcoming(ctx context.Context, page int) (*PageOut, error)
		Search(ctx context.Context, query string, page int) (*PageOut, error)
		ByGenre(ctx context.Context, genreId int64, page int) (*PageOut, error)
		Similar(ctx context.Context, movieId int64, page int) (*PageOut, error)
		Genres(ctx context.Context) (*GenresOut, error)
		Details(ctx context.Context, movieId int64) (*MovieDetails, error)
		Credits(ctx context.Context, movieId int64) (*CreditsOut, error)
		Videos(ctx context.Context, movieId int64) (*VideosOut, error)
	}

	tmdbClient struct {
		apiUrl     string
		apiKey     string
		httpClient *http.Client
	}
)

func CreateTmdbClient(config *config.CinelogConfig, apiKey string) TmdbClient {
	if apiKey == "" {
		log.Warn("No TMDB API key configured, serving demo movie data")
	}

	return &tmdbClient{
		apiUrl: config.Tmdb.ApiUrl,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *tmdbClient) Popular(ctx context.Context, page int) (*PageOut, error) {
	return c.fetchPage(ctx, "/movie/popular", pageQuery(page))
}

func (c *tmdbClient) TopRated(ctx context.Context, page int) (*PageOut, error) {
	return c.fetchPage(ctx, "/movie/top_rated", pageQuery(page))
}

func (c *tmdbClient) NowPlaying(ctx context.Context, page int) (*PageOut, error) {
	return c.fetchPage(ctx, "/movie/now_playing", pageQuery(page))
}

func (c *tmdbClient) Upcoming(ctx context.Context, page int) (*PageOut, error) {
	return c.fetchPage(ctx, "/movie/upcoming", pageQuery(page))
}

func (c *tmdbClient) Search(ctx context.Context, query string, page int) (*PageOut, error) {
	values := pageQuery(page)
	values.Set("query", query)

	return c.fetchPage(ctx, "/search/movie", values)
}

func (c *tmdbClient) ByGenre(ctx context.Context, genreId int64, page int) (*PageOut, error) {
	values := pageQuery(page)
	values.Set("with_genres", fmt.Sprintf("%d", genreId))

	return c.fetchPage(ctx, "/discover/movie", values)
}

func (c *tmdbClient) Similar(ctx context.Context, movieId int64, page int) (*PageOut, error) {
	return c.fetchPage(ctx, fmt.Sprintf("/movie/%d/similar", movieId), pageQuery(page))
}

func (c *tmdbClient) Genres(ctx context.Context) (*GenresOut, error) {
	result := &GenresOut{}
	if err := c.fetch(ctx, "/genre/movie/list", url.Values{}, result); err != nil {
		return mockGenres(), nil
	}

	return result, nil
}

func (c *tmdbClient) Details(ctx context.Context, movieId int64) (*MovieDetails, error) {
	result := &MovieDetails{}
	if err := c.fetch(ctx, fmt.Sprintf("/movie/%d", movieId), url.Values{}, result); err != nil {
		return mockDetails(movieId), nil
	}

	return result, nil
}

func (c *tmdbClient) Credits(ctx context.Context, movieId int64) (*CreditsOut, error) {
	result := &CreditsOut{}
	if err := c.fetch(ctx, fmt.Sprintf("/movie/%d/credits", movieId), url.Values{}, result); err != nil {
		return &CreditsOut{Cast: []CastMember{}, Crew: []CrewMember{}}, nil
	}

	return result, nil
}

func (c *tmdbClient) Videos(ctx context.Context, movieId int64) (*VideosOut, error) {
	result := &VideosOut{}
	if err := c.fetch(ctx, fmt.Sprintf("/movie/%d/videos", movieId), url.Values{}, result); err != nil {
		return &VideosOut{Results: []Video{}}, nil
	}

	return result, nil
}

func (c *tmdbClient) fetchPage(ctx context.Context, endpoint string, values url.Values) (*PageOut, error) {
	result := &PageOut{}
	if err := c.fetch(ctx, endpoint, values, result); err != nil {
		return mockPage(), nil
	}

	return result, nil
}

func (c *tmdbClient) fetch(ctx context.Context, endpoint string, values url.Values, out any) error {
	if c.apiKey == "" {
		return errDemoMode
	}

	values.Set("api_key", c.apiKey)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiUrl+endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Warn("TMDB request failed, serving demo data", "endpoint", endpoint, "error", err)
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		log.Warn("TMDB request rejected, serving demo data", "endpoint", endpoint, "status", response.StatusCode)
		return fmt.Errorf("tmdb status %d", response.StatusCode)
	}

	return json.NewDecoder(response.Body).Decode(out)
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}

	values := url.Values{}
	values.Set("page", fmt.Sprintf("%d", page))

	return values
}
