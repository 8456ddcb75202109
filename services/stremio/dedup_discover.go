package stremio

import (
	"context"

	"github.com/webtor-io/recent-catalog/models"
)

// DedupDiscover wraps another Discoverer and drops repeated items, keeping
// the first occurrence of each id in provider order.
type DedupDiscover struct {
	inner Discoverer
}

var _ Discoverer = (*DedupDiscover)(nil)

func NewDedupDiscover(inner Discoverer) *DedupDiscover {
	return &DedupDiscover{
		inner: inner,
	}
}

func (d *DedupDiscover) Discover(ctx context.Context, q *models.CatalogQuery) []models.CandidateItem {
	items := d.inner.Discover(ctx, q)
	if len(items) < 2 {
		return items
	}
	seen := make(map[int64]bool, len(items))
	res := make([]models.CandidateItem, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		res = append(res, it)
	}
	return res
}
