package movie

// Metadata shapes mirror the TMDB v3 API. Responses are passed through to the
// web client unchanged, so the field names stay snake_case.

type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	GenreIds     []int64 `json:"genre_ids,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
	Runtime      int     `json:"runtime,omitempty"`
}

type MovieDetails struct {
	Movie
	Budget           int64  `json:"budget"`
	Revenue          int64  `json:"revenue"`
	Tagline          string `json:"tagline"`
	Homepage         string `json:"homepage"`
	ImdbID           string `json:"imdb_id"`
	OriginalLanguage string `json:"original_language"`
	OriginalTitle    string `json:"original_title"`
	Status           string `json:"status"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

type CrewMember struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	ProfilePath *string `json:"profile_path"`
}

type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type PageOut struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type GenresOut struct {
	Genres []Genre `json:"genres"`
}

type CreditsOut struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type VideosOut struct {
	Results []Video `json:"results"`
}
