package main

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/services/common"
	"github.com/webtor-io/recent-catalog/services/discover"
	enr "github.com/webtor-io/recent-catalog/services/enrich"
	"github.com/webtor-io/recent-catalog/services/omdb"
	"github.com/webtor-io/recent-catalog/services/ratelimit"
	"github.com/webtor-io/recent-catalog/services/stremio"
	"github.com/webtor-io/recent-catalog/services/tmdb"
)

const validateTimeout = 10 * time.Second

func configureProviders(f []cli.Flag) []cli.Flag {
	f = common.RegisterClientFlags(f)
	f = ratelimit.RegisterFlags(f)
	f = tmdb.RegisterFlags(f)
	f = omdb.RegisterFlags(f)
	f = discover.RegisterFlags(f)
	f = enr.RegisterFlags(f)
	f = stremio.RegisterFlags(f)
	return f
}

func makeBuilder(c *cli.Context, cl *http.Client) (*stremio.Builder, error) {
	// Setting Rate Limiter
	lim := ratelimit.New(c)

	// Setting TMDB API
	tapi := tmdb.New(c, cl, lim)
	if tapi == nil {
		return nil, errors.New("tmdb api key is required")
	}
	ctx, cancel := context.WithTimeout(context.Background(), validateTimeout)
	defer cancel()
	err := tapi.Validate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate tmdb api key")
	}

	// Setting OMDB Rating Provider
	var rp enr.RatingProvider
	om := enr.NewOMDB(omdb.New(c, cl))
	if om != nil {
		rp = om
	} else {
		log.Warn("omdb api key is not set, ratings are disabled")
	}

	// Setting Discover
	d := discover.New(c, tapi)

	// Setting Enricher
	en := enr.New(c, tapi, rp)

	return stremio.NewBuilder(c, d, en), nil
}
