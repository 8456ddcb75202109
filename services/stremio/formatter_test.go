package stremio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/recent-catalog/models"
)

func rating(f float64) *float64 {
	return &f
}

func TestFormatter_Format_Full(t *testing.T) {
	f := NewFormatter()
	item := &models.CandidateItem{
		ID:           550,
		Title:        "Night Shift",
		Overview:     "A nurse works the graveyard shift.",
		PosterPath:   "/poster.jpg",
		BackdropPath: "/backdrop.jpg",
		ReleaseDate:  "2024-04-30",
		GenreIDs:     []int{27, 999999, 53},
	}
	res := &models.EnrichmentResult{
		ImdbID: "tt1234567",
		Streaming: []models.StreamingAvailability{
			{Region: "US", Providers: []string{"Netflix", "Hulu"}},
			{Region: "GB", Providers: []string{"Netflix"}},
		},
		Rating: rating(7.4),
	}

	m, ok := f.Format(item, res, models.ContentTypeMovie)

	require.True(t, ok)
	assert.Equal(t, "tmdb:550", m.ID)
	assert.Equal(t, "movie", m.Type)
	assert.Equal(t, "Night Shift", m.Name)
	assert.Equal(t, []string{"Horror", "Thriller"}, m.Genres)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", m.Poster)
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/backdrop.jpg", m.Background)
	assert.Equal(t, "2024", m.ReleaseInfo)
	assert.Equal(t, "2024-04-30T00:00:00Z", m.Released)
	require.NotNil(t, m.ImdbRating)
	assert.Equal(t, 7.4, *m.ImdbRating)
	assert.Empty(t, m.ImdbID, "external id is only exposed for series")
	assert.Equal(t,
		"A nurse works the graveyard shift.\n\n"+
			"Streaming on:\n"+
			"United States: Netflix, Hulu\n"+
			"United Kingdom: Netflix\n\n"+
			"IMDb rating: 7.4/10",
		m.Description)
}

func TestFormatter_Format_SeriesExposesImdbID(t *testing.T) {
	m, ok := NewFormatter().Format(
		&models.CandidateItem{ID: 7, Title: "Harbor"},
		&models.EnrichmentResult{ImdbID: "tt7654321"},
		models.ContentTypeSeries,
	)
	require.True(t, ok)
	assert.Equal(t, "series", m.Type)
	assert.Equal(t, "tt7654321", m.ImdbID)
}

func TestFormatter_Format_Minimal(t *testing.T) {
	m, ok := NewFormatter().Format(&models.CandidateItem{ID: 1, Title: "Bare", Overview: "Just text."}, nil, models.ContentTypeMovie)
	require.True(t, ok)
	assert.Equal(t, "Just text.", m.Description)
	assert.Nil(t, m.ImdbRating)
	assert.Empty(t, m.Poster)
	assert.Empty(t, m.Released)
	assert.Nil(t, m.Genres)
}

func TestFormatter_Format_NoOverview(t *testing.T) {
	m, ok := NewFormatter().Format(
		&models.CandidateItem{ID: 1, Title: "Quiet"},
		&models.EnrichmentResult{Rating: rating(6)},
		models.ContentTypeMovie,
	)
	require.True(t, ok)
	assert.Equal(t, "IMDb rating: 6.0/10", m.Description)
}

func TestFormatter_Format_SkipsBrokenItems(t *testing.T) {
	f := NewFormatter()
	_, ok := f.Format(&models.CandidateItem{ID: 0, Title: "No id"}, nil, models.ContentTypeMovie)
	assert.False(t, ok)
	_, ok = f.Format(&models.CandidateItem{ID: 5, Title: "  "}, nil, models.ContentTypeMovie)
	assert.False(t, ok)
	_, ok = f.Format(nil, nil, models.ContentTypeMovie)
	assert.False(t, ok)
}

func TestRegionName(t *testing.T) {
	assert.Equal(t, "United States", RegionName("us"))
	assert.Equal(t, "South Africa", RegionName("ZA"))
	assert.Equal(t, "NOT-A-REGION", RegionName("not-a-region"))
}
