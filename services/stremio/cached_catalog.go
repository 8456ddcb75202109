package stremio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/webtor-io/lazymap"
)

const partialExpire = 10 * time.Second

// partialPageError carries a page cut short by the deadline, so that it is
// kept only for the error expiry of the cache.
type partialPageError struct {
	resp *MetasResponse
}

func (e *partialPageError) Error() string {
	return fmt.Sprintf("catalog page cut short with %d items", len(e.resp.Metas))
}

// CachedCatalog memoizes catalog pages of the wrapped service for a fixed period.
// Pages cut short by the deadline are kept for the shorter error expiry.
type CachedCatalog struct {
	inner CatalogService
	cache *lazymap.LazyMap[*MetasResponse]
}

func NewCachedCatalog(inner CatalogService, expire time.Duration) *CachedCatalog {
	return newCachedCatalog(inner, expire, partialExpire)
}

func newCachedCatalog(inner CatalogService, expire time.Duration, errorExpire time.Duration) *CachedCatalog {
	return &CachedCatalog{
		inner: inner,
		cache: lazymap.New[*MetasResponse](&lazymap.Config{
			Expire:      expire,
			ErrorExpire: errorExpire,
		}),
	}
}

func (s *CachedCatalog) GetCatalog(ctx context.Context, r *CatalogRequest) (*MetasResponse, error) {
	// The page is shared between callers, so the loading caller going away
	// must not shorten it. Only the catalog deadline applies.
	lctx := context.WithoutCancel(ctx)
	resp, err := s.cache.Get(cacheKey(r), func() (*MetasResponse, error) {
		resp, err := s.inner.GetCatalog(lctx, r)
		if err != nil {
			return nil, err
		}
		if resp.IsPartial() {
			return nil, &partialPageError{resp: resp}
		}
		return resp, nil
	})
	var pe *partialPageError
	if errors.As(err, &pe) {
		return pe.resp, nil
	}
	return resp, err
}

func cacheKey(r *CatalogRequest) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%v/%v/%d/%v", r.Type, r.ID, r.Skip, strings.ToLower(strings.TrimSpace(r.Genre)))
}

var _ CatalogService = (*CachedCatalog)(nil)
