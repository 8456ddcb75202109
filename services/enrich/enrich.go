package enrich

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/models"
	"github.com/webtor-io/recent-catalog/services/tmdb"
)

const (
	targetRegionsFlag    = "target-regions"
	detailTimeoutFlag    = "enrich-detail-timeout"
	streamingTimeoutFlag = "enrich-streaming-timeout"
	ratingTimeoutFlag    = "enrich-rating-timeout"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   targetRegionsFlag,
			Usage:  "comma separated regions to report streaming availability for",
			EnvVar: "TARGET_REGIONS",
			Value:  "US,GB,CA",
		},
		cli.DurationFlag{
			Name:   detailTimeoutFlag,
			Usage:  "timeout for the detail lookup of a single item",
			EnvVar: "ENRICH_DETAIL_TIMEOUT",
			Value:  5 * time.Second,
		},
		cli.DurationFlag{
			Name:   streamingTimeoutFlag,
			Usage:  "timeout for the streaming availability lookup of a single item",
			EnvVar: "ENRICH_STREAMING_TIMEOUT",
			Value:  5 * time.Second,
		},
		cli.DurationFlag{
			Name:   ratingTimeoutFlag,
			Usage:  "timeout for the rating lookup of a single item",
			EnvVar: "ENRICH_RATING_TIMEOUT",
			Value:  3 * time.Second,
		},
	)
}

type MetadataProvider interface {
	GetDetails(ctx context.Context, mt tmdb.MediaType, id int64) (*tmdb.Details, error)
	GetWatchProviders(ctx context.Context, mt tmdb.MediaType, id int64) (*tmdb.WatchProvidersResponse, error)
}

type RatingProvider interface {
	// GetRating returns nil, nil when the provider has no rating for the id.
	GetRating(ctx context.Context, imdbID string) (*float64, error)
}

type Config struct {
	Regions          []string
	DetailTimeout    time.Duration
	StreamingTimeout time.Duration
	RatingTimeout    time.Duration
}

type Enricher struct {
	md      MetadataProvider
	rating  RatingProvider
	regions []string
	cfg     Config
}

func New(c *cli.Context, md MetadataProvider, rating RatingProvider) *Enricher {
	return NewEnricher(md, rating, &Config{
		Regions:          ParseRegions(c.String(targetRegionsFlag)),
		DetailTimeout:    c.Duration(detailTimeoutFlag),
		StreamingTimeout: c.Duration(streamingTimeoutFlag),
		RatingTimeout:    c.Duration(ratingTimeoutFlag),
	})
}

// NewEnricher accepts a nil rating provider, rating lookups are skipped then.
func NewEnricher(md MetadataProvider, rating RatingProvider, cfg *Config) *Enricher {
	return &Enricher{
		md:      md,
		rating:  rating,
		regions: cfg.Regions,
		cfg:     *cfg,
	}
}

func ParseRegions(s string) []string {
	var regions []string
	seen := map[string]bool{}
	for _, r := range strings.Split(s, ",") {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		regions = append(regions, r)
	}
	return regions
}

// Enrich collects the external id, streaming availability and rating for the item.
// Every lookup is bounded by its own timeout and failures only leave the
// corresponding field empty.
func (s *Enricher) Enrich(ctx context.Context, item *models.CandidateItem, ct models.ContentType) *models.EnrichmentResult {
	mt := tmdb.MediaTypeFromContentType(ct)
	res := &models.EnrichmentResult{}
	l := log.WithField("id", item.ID).WithField("type", ct)

	imdbID, err := withTimeout(ctx, s.cfg.DetailTimeout, func(ctx context.Context) (string, error) {
		return s.lookupImdbID(ctx, mt, item.ID)
	})
	if err != nil {
		l.WithError(err).Warn("failed to lookup item details")
	}
	res.ImdbID = imdbID

	streaming, err := withTimeout(ctx, s.cfg.StreamingTimeout, func(ctx context.Context) ([]models.StreamingAvailability, error) {
		return s.lookupStreaming(ctx, mt, item.ID)
	})
	if err != nil {
		l.WithError(err).Warn("failed to lookup streaming availability")
	}
	res.Streaming = streaming

	if !res.HasImdbID() || s.rating == nil {
		return res
	}
	rating, err := withTimeout(ctx, s.cfg.RatingTimeout, func(ctx context.Context) (*float64, error) {
		return s.rating.GetRating(ctx, res.ImdbID)
	})
	if err != nil {
		l.WithError(err).WithField("imdb_id", res.ImdbID).Warn("failed to lookup rating")
	}
	res.Rating = rating
	return res
}

func (s *Enricher) lookupImdbID(ctx context.Context, mt tmdb.MediaType, id int64) (string, error) {
	d, err := s.md.GetDetails(ctx, mt, id)
	if err != nil {
		return "", err
	}
	if d == nil {
		return "", nil
	}
	return d.GetImdbID(), nil
}

func (s *Enricher) lookupStreaming(ctx context.Context, mt tmdb.MediaType, id int64) ([]models.StreamingAvailability, error) {
	if len(s.regions) == 0 {
		return nil, nil
	}
	wp, err := s.md.GetWatchProviders(ctx, mt, id)
	if err != nil {
		return nil, err
	}
	if wp == nil {
		return nil, nil
	}
	var res []models.StreamingAvailability
	for _, region := range s.regions {
		wr, ok := wp.Results[region]
		if !ok {
			continue
		}
		var names []string
		for _, p := range wr.Flatrate {
			if p.ProviderName != "" {
				names = append(names, p.ProviderName)
			}
		}
		if len(names) == 0 {
			continue
		}
		res = append(res, models.StreamingAvailability{
			Region:    region,
			Providers: names,
		})
	}
	return res, nil
}

// withTimeout runs f with a derived deadline and gives up as soon as it passes.
// The derived context is cancelled on return so the abandoned call is torn down.
func withTimeout[T any](ctx context.Context, d time.Duration, f func(ctx context.Context) (T, error)) (T, error) {
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := f(ctx)
		ch <- result{v, err}
	}()
	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, errors.Wrap(ctx.Err(), "lookup abandoned")
	}
}
