package stremio

import (
	"context"

	"github.com/webtor-io/recent-catalog/models"
)

type ManifestService interface {
	GetManifest(ctx context.Context) (*ManifestResponse, error)
}

type CatalogService interface {
	GetCatalog(ctx context.Context, r *CatalogRequest) (*MetasResponse, error)
}

// Discoverer never fails, an unavailable provider yields no items.
type Discoverer interface {
	Discover(ctx context.Context, q *models.CatalogQuery) []models.CandidateItem
}

// ItemEnricher never fails, missing data is left empty in the result.
type ItemEnricher interface {
	Enrich(ctx context.Context, item *models.CandidateItem, ct models.ContentType) *models.EnrichmentResult
}
