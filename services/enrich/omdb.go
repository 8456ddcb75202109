package enrich

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/recent-catalog/services/omdb"
)

type OMDB struct {
	api *omdb.Api
}

func NewOMDB(api *omdb.Api) *OMDB {
	if api == nil {
		return nil
	}
	return &OMDB{
		api: api,
	}
}

func (s *OMDB) GetRating(ctx context.Context, imdbID string) (*float64, error) {
	r, err := s.api.GetByImdbID(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		log.Debugf("no omdb record found for %v", imdbID)
		return nil, nil
	}
	return r.ImdbRating, nil
}

var _ RatingProvider = (*OMDB)(nil)
