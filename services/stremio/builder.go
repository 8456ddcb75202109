package stremio

import (
	"time"

	"github.com/urfave/cli"
)

type Builder struct {
	discoverer  Discoverer
	enricher    ItemEnricher
	deadline    time.Duration
	maxItems    int
	cacheExpire time.Duration
	catalog     CatalogService
}

func NewBuilder(c *cli.Context, d Discoverer, e ItemEnricher) *Builder {
	b := &Builder{
		discoverer:  d,
		enricher:    e,
		deadline:    c.Duration(CatalogDeadlineFlag),
		maxItems:    c.Int(CatalogMaxItemsFlag),
		cacheExpire: c.Duration(CatalogCacheExpireFlag),
	}
	b.catalog = b.makeCatalog()
	return b
}

func (s *Builder) BuildManifestService() (ManifestService, error) {
	return NewManifest(), nil
}

// BuildCatalogService returns the shared catalog service, so that cached
// pages survive between requests.
func (s *Builder) BuildCatalogService() (CatalogService, error) {
	return s.catalog, nil
}

func (s *Builder) makeCatalog() CatalogService {
	var cas CatalogService = NewCatalog(NewDedupDiscover(s.discoverer), s.enricher, &CatalogConfig{
		Deadline: s.deadline,
		MaxItems: s.maxItems,
	})
	if s.cacheExpire > 0 {
		cas = NewCachedCatalog(cas, s.cacheExpire)
	}
	return cas
}
