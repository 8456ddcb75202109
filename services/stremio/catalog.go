package stremio

import (
	"context"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/recent-catalog/models"
)

type CatalogState string

const (
	CatalogStateStarted     CatalogState = "started"
	CatalogStateDiscovering CatalogState = "discovering"
	CatalogStateEnriching   CatalogState = "enriching"
	CatalogStateFormatting  CatalogState = "formatting"
	CatalogStateCompleted   CatalogState = "completed"
	CatalogStateTimedOut    CatalogState = "timed_out"
)

type CatalogConfig struct {
	Deadline time.Duration
	MaxItems int
}

// Catalog serves a single catalog page: discovery, per item enrichment and
// formatting, bounded by a global deadline. Items completed before the
// deadline are returned, the rest are dropped.
type Catalog struct {
	discoverer Discoverer
	enricher   ItemEnricher
	formatter  *Formatter
	deadline   time.Duration
	maxItems   int
}

func NewCatalog(d Discoverer, e ItemEnricher, cfg *CatalogConfig) *Catalog {
	if cfg == nil {
		cfg = &CatalogConfig{}
	}
	return &Catalog{
		discoverer: d,
		enricher:   e,
		formatter:  NewFormatter(),
		deadline:   cfg.Deadline,
		maxItems:   cfg.MaxItems,
	}
}

type catalogRun struct {
	id    string
	state CatalogState
	start time.Time
}

func (s *catalogRun) transition(st CatalogState, fields log.Fields) {
	s.state = st
	l := log.WithField("request_id", s.id).
		WithField("state", st).
		WithField("elapsed", time.Since(s.start))
	if fields != nil {
		l = l.WithFields(fields)
	}
	l.Debug("catalog state changed")
}

func (s *Catalog) GetCatalog(ctx context.Context, r *CatalogRequest) (*MetasResponse, error) {
	res := &MetasResponse{Metas: []MetaItem{}}
	ct, ok := ParseCatalogRequest(r)
	if !ok {
		log.WithField("request", r).Debug("unknown catalog requested")
		return res, nil
	}
	run := &catalogRun{
		id:    uuid.NewV4().String(),
		start: time.Now(),
	}
	run.transition(CatalogStateStarted, log.Fields{
		"type":  r.Type,
		"skip":  r.Skip,
		"genre": r.Genre,
	})

	if s.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	run.transition(CatalogStateDiscovering, nil)
	items := s.discoverer.Discover(ctx, models.NewCatalogQuery(ct, r.Skip, r.Genre))
	if ctx.Err() != nil {
		run.transition(CatalogStateTimedOut, log.Fields{"count": 0})
		res.partial = true
		return res, nil
	}
	if s.maxItems > 0 && len(items) > s.maxItems {
		items = items[:s.maxItems]
	}

	for i := range items {
		run.transition(CatalogStateEnriching, log.Fields{"index": i, "item_id": items[i].ID})
		er := s.enricher.Enrich(ctx, &items[i], ct)
		if ctx.Err() != nil {
			run.transition(CatalogStateTimedOut, log.Fields{"count": len(res.Metas)})
			res.partial = true
			return res, nil
		}
		run.transition(CatalogStateFormatting, log.Fields{"index": i})
		if m, ok := s.formatter.Format(&items[i], er, ct); ok {
			res.Metas = append(res.Metas, *m)
		}
	}
	run.transition(CatalogStateCompleted, log.Fields{"count": len(res.Metas)})
	return res, nil
}

// NewCatalogRequest targets the catalog published for the content type.
func NewCatalogRequest(ct string, skip int, genre string) *CatalogRequest {
	r := &CatalogRequest{
		Type:  ct,
		Skip:  skip,
		Genre: genre,
	}
	if t, ok := models.ParseContentType(ct); ok {
		r.ID = catalogIDs[t]
	}
	return r
}

// ParseCatalogRequest resolves the content type of a request and checks that
// the catalog id belongs to it.
func ParseCatalogRequest(r *CatalogRequest) (models.ContentType, bool) {
	if r == nil {
		return "", false
	}
	ct, ok := models.ParseContentType(r.Type)
	if !ok {
		return "", false
	}
	if catalogIDs[ct] != r.ID {
		return "", false
	}
	return ct, true
}

var _ CatalogService = (*Catalog)(nil)
