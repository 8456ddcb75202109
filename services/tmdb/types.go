package tmdb

import "github.com/webtor-io/recent-catalog/models"

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

func (t MediaType) String() string {
	return string(t)
}

func MediaTypeFromContentType(ct models.ContentType) MediaType {
	if ct == models.ContentTypeSeries {
		return MediaTypeTV
	}
	return MediaTypeMovie
}

type DiscoverResult struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

type DiscoverResponse struct {
	Page         int              `json:"page"`
	Results      []DiscoverResult `json:"results"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
}

type ExternalIDs struct {
	ImdbID string `json:"imdb_id"`
	TvdbID int64  `json:"tvdb_id"`
}

type Details struct {
	ID          int64        `json:"id"`
	ImdbID      string       `json:"imdb_id"`
	ExternalIDs *ExternalIDs `json:"external_ids"`
}

// GetImdbID prefers the top-level movie field and falls back to external ids.
func (s *Details) GetImdbID() string {
	if s.ImdbID != "" {
		return s.ImdbID
	}
	if s.ExternalIDs != nil {
		return s.ExternalIDs.ImdbID
	}
	return ""
}

type WatchProvider struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

type WatchRegion struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate"`
	Rent     []WatchProvider `json:"rent"`
	Buy      []WatchProvider `json:"buy"`
}

type WatchProvidersResponse struct {
	ID      int64                  `json:"id"`
	Results map[string]WatchRegion `json:"results"`
}

type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
