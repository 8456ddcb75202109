package stremio

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/recent-catalog/models"
)

type countingCatalog struct {
	calls atomic.Int32
}

func (s *countingCatalog) GetCatalog(_ context.Context, r *CatalogRequest) (*MetasResponse, error) {
	s.calls.Add(1)
	return &MetasResponse{Metas: []MetaItem{{ID: "tmdb:1", Type: r.Type, Name: "Cached"}}}, nil
}

func TestCachedCatalog_GetCatalog(t *testing.T) {
	inner := &countingCatalog{}
	c := NewCachedCatalog(inner, time.Minute)
	ctx := context.Background()

	r1, err := c.GetCatalog(ctx, &CatalogRequest{Type: "movie", ID: movieCatalogID, Genre: "Horror"})
	require.NoError(t, err)
	r2, err := c.GetCatalog(ctx, &CatalogRequest{Type: "movie", ID: movieCatalogID, Genre: "horror"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), inner.calls.Load())
	assert.Equal(t, r1, r2)

	_, err = c.GetCatalog(ctx, &CatalogRequest{Type: "movie", ID: movieCatalogID, Skip: 20, Genre: "Horror"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "series/recent-series/40/drama", cacheKey(&CatalogRequest{Type: "series", ID: seriesCatalogID, Skip: 40, Genre: " Drama "}))
	assert.Equal(t, "", cacheKey(nil))
}

type slowEnricher struct {
	delay time.Duration
}

func (s *slowEnricher) Enrich(ctx context.Context, _ *models.CandidateItem, _ models.ContentType) *models.EnrichmentResult {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}
	return &models.EnrichmentResult{}
}

func TestCachedCatalog_LoadingCallerGoneKeepsFullPage(t *testing.T) {
	d := &mockDiscoverer{items: makeItems(3)}
	inner := NewCatalog(d, &slowEnricher{delay: 20 * time.Millisecond}, &CatalogConfig{Deadline: 5 * time.Second, MaxItems: 20})
	c := NewCachedCatalog(inner, time.Minute)
	req := &CatalogRequest{Type: "movie", ID: movieCatalogID}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	first, err := c.GetCatalog(ctx, req)
	require.NoError(t, err)
	assert.Len(t, first.Metas, 3)
	assert.False(t, first.IsPartial())

	second, err := c.GetCatalog(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, second.Metas, 3)
	assert.Len(t, d.queries, 1)
}

type partialThenFullCatalog struct {
	calls atomic.Int32
}

func (s *partialThenFullCatalog) GetCatalog(_ context.Context, _ *CatalogRequest) (*MetasResponse, error) {
	if s.calls.Add(1) == 1 {
		return &MetasResponse{Metas: []MetaItem{{ID: "tmdb:1"}}, partial: true}, nil
	}
	return &MetasResponse{Metas: []MetaItem{{ID: "tmdb:1"}, {ID: "tmdb:2"}, {ID: "tmdb:3"}}}, nil
}

func TestCachedCatalog_PartialPageExpiresEarly(t *testing.T) {
	inner := &partialThenFullCatalog{}
	c := newCachedCatalog(inner, time.Hour, 20*time.Millisecond)
	req := &CatalogRequest{Type: "series", ID: seriesCatalogID}

	first, err := c.GetCatalog(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, first.Metas, 1, "a cut short page is still served to its caller")
	assert.True(t, first.IsPartial())

	assert.Eventually(t, func() bool {
		resp, err := c.GetCatalog(context.Background(), req)
		return err == nil && len(resp.Metas) == 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(2), inner.calls.Load())

	resp, err := c.GetCatalog(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Metas, 3, "a full page stays cached")
	assert.Equal(t, int32(2), inner.calls.Load())
}
