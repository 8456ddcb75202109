package discover

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/models"
	"github.com/webtor-io/recent-catalog/services/tmdb"
)

const (
	windowMonthsFlag = "discover-window-months"
	minVotesFlag     = "discover-min-votes"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.IntFlag{
			Name:   windowMonthsFlag,
			Usage:  "how many trailing months count as recently released",
			EnvVar: "DISCOVER_WINDOW_MONTHS",
			Value:  3,
		},
		cli.IntFlag{
			Name:   minVotesFlag,
			Usage:  "minimum vote count for discovered items",
			EnvVar: "DISCOVER_MIN_VOTES",
			Value:  10,
		},
	)
}

type Provider interface {
	Discover(ctx context.Context, mt tmdb.MediaType, p *tmdb.DiscoverParams) (*tmdb.DiscoverResponse, error)
}

type Discover struct {
	api          Provider
	windowMonths int
	minVotes     int
	now          func() time.Time
}

func New(c *cli.Context, api Provider) *Discover {
	return NewDiscover(api, c.Int(windowMonthsFlag), c.Int(minVotesFlag))
}

func NewDiscover(api Provider, windowMonths int, minVotes int) *Discover {
	if windowMonths <= 0 {
		windowMonths = 3
	}
	return &Discover{
		api:          api,
		windowMonths: windowMonths,
		minVotes:     minVotes,
		now:          time.Now,
	}
}

// Discover returns recently released items for the query, newest first.
// Provider failures are logged and yield an empty list.
func (s *Discover) Discover(ctx context.Context, q *models.CatalogQuery) []models.CandidateItem {
	mt := tmdb.MediaTypeFromContentType(q.ContentType)
	resp, err := s.api.Discover(ctx, mt, s.makeParams(mt, q))
	if err != nil {
		log.WithError(err).
			WithField("type", q.ContentType).
			WithField("page", q.Page).
			Warn("failed to discover recent items")
		return nil
	}
	if resp == nil {
		return nil
	}
	items := make([]models.CandidateItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, s.makeItem(mt, &r))
	}
	return items
}

func (s *Discover) makeParams(mt tmdb.MediaType, q *models.CatalogQuery) *tmdb.DiscoverParams {
	now := s.now().UTC()
	p := &tmdb.DiscoverParams{
		Page:     q.Page,
		From:     now.AddDate(0, -s.windowMonths, 0),
		To:       now,
		MinVotes: s.minVotes,
	}
	if q.Genre != nil {
		if id, ok := tmdb.GenreID(mt, *q.Genre); ok {
			p.GenreID = id
		}
	}
	return p
}

func (s *Discover) makeItem(mt tmdb.MediaType, r *tmdb.DiscoverResult) models.CandidateItem {
	item := models.CandidateItem{
		ID:           r.ID,
		Title:        r.Title,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseDate:  r.ReleaseDate,
		GenreIDs:     r.GenreIDs,
		VoteAverage:  r.VoteAverage,
		VoteCount:    r.VoteCount,
	}
	if mt == tmdb.MediaTypeTV {
		item.Title = r.Name
		item.ReleaseDate = r.FirstAirDate
	}
	return item
}
