package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApi_GetByImdbID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tt1234567", r.URL.Query().Get("i"))
		assert.Equal(t, "secret", r.URL.Query().Get("apikey"))
		_, _ = w.Write([]byte(`{"Title":"Night Shift","imdbID":"tt1234567","Type":"movie","imdbRating":"7.4","imdbVotes":"1,024","Response":"True"}`))
	}))
	defer server.Close()

	resp, err := NewApi(server.URL, "secret", &http.Client{}).GetByImdbID(context.Background(), "tt1234567")
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.ImdbRating)
	assert.InDelta(t, 7.4, *resp.ImdbRating, 0.001)
	assert.Equal(t, OmdbTypeMovie, resp.Type)
	assert.Equal(t, "1,024", resp.ImdbVotes)
}

func TestApi_GetByImdbID_NotAvailableRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Title":"Harbor","imdbID":"tt7654321","Type":"series","imdbRating":"N/A","Response":"True"}`))
	}))
	defer server.Close()

	resp, err := NewApi(server.URL, "secret", &http.Client{}).GetByImdbID(context.Background(), "tt7654321")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Nil(t, resp.ImdbRating)
}

func TestApi_GetByImdbID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer server.Close()

	resp, err := NewApi(server.URL, "secret", &http.Client{}).GetByImdbID(context.Background(), "tt0000000")
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestApi_GetByImdbID_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	}))
	defer server.Close()

	resp, err := NewApi(server.URL, "bad", &http.Client{}).GetByImdbID(context.Background(), "tt1234567")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "Invalid API key")
}
