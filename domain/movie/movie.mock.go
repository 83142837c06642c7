package movie

import (
	"errors"
	"fmt"
)

var errDemoMode = errors.New("tmdb disabled")

// Demo catalog served when no TMDB API key is configured or the upstream call
// fails. Content is deterministic so the web client and the tests can rely on it.

func mockMovie(movieId int64) Movie {
	return Movie{
		ID:          movieId,
		Title:       fmt.Sprintf("Demo Movie %d", movieId),
		Overview:    "This is a demo movie. Configure a TMDB API key to see real data.",
		ReleaseDate: "2024-01-01",
		VoteAverage: 8.5,
		VoteCount:   1000,
		GenreIds:    []int64{28, 12},
	}
}

func mockPage() *PageOut {
	results := make([]Movie, 0, 20)
	for movieId := int64(1); movieId <= 20; movieId++ {
		results = append(results, mockMovie(movieId))
	}

	return &PageOut{
		Page:         1,
		Results:      results,
		TotalPages:   1,
		TotalResults: 20,
	}
}

func mockDetails(movieId int64) *MovieDetails {
	details := &MovieDetails{Movie: mockMovie(movieId)}
	details.Runtime = 120
	details.Genres = []Genre{
		{ID: 28, Name: "Action"},
		{ID: 12, Name: "Adventure"},
	}
	details.OriginalLanguage = "en"
	details.OriginalTitle = details.Title
	details.Status = "Released"

	return details
}

func mockGenres() *GenresOut {
	return &GenresOut{
		Genres: []Genre{
			{ID: 28, Name: "Action"},
			{ID: 12, Name: "Adventure"},
			{ID: 16, Name: "Animation"},
			{ID: 35, Name: "Comedy"},
			{ID: 80, Name: "Crime"},
			{ID: 99, Name: "Documentary"},
			{ID: 18, Name: "Drama"},
			{ID: 10751, Name: "Family"},
			{ID: 14, Name: "Fantasy"},
			{ID: 36, Name: "History"},
			{ID: 27, Name: "Horror"},
			{ID: 10402, Name: "Music"},
			{ID: 9648, Name: "Mystery"},
			{ID: 10749, Name: "Romance"},
			{ID: 878, Name: "Science Fiction"},
			{ID: 10770, Name: "TV Movie"},
			{ID: 53, Name: "Thriller"},
			{ID: 10752, Name: "War"},
			{ID: 37, Name: "Western"},
		},
	}
}
