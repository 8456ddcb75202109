package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/services/ratelimit"
)

const (
	tmdbApiKeyFlag      = "tmdb-api-key"
	tmdbApiHostFlag     = "tmdb-api-host"
	tmdbApiPortFlag     = "tmdb-api-port"
	tmdbApiSecureFlag   = "tmdb-api-secure"
	tmdbApiLanguageFlag = "tmdb-api-language"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   tmdbApiHostFlag,
			Usage:  "tmdb api host",
			EnvVar: "TMDB_API_HOST",
			Value:  "api.themoviedb.org",
		},
		cli.IntFlag{
			Name:   tmdbApiPortFlag,
			Usage:  "tmdb api port",
			EnvVar: "TMDB_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   tmdbApiSecureFlag,
			Usage:  "tmdb api secure (https)",
			EnvVar: "TMDB_API_SECURE",
		},
		cli.StringFlag{
			Name:   tmdbApiKeyFlag,
			Usage:  "tmdb api key",
			Value:  "",
			EnvVar: "TMDB_API_KEY",
		},
		cli.StringFlag{
			Name:   tmdbApiLanguageFlag,
			Usage:  "tmdb response language",
			Value:  "en-US",
			EnvVar: "TMDB_API_LANGUAGE",
		},
	)
}

var (
	ErrUnauthorized = errors.New("tmdb: invalid api key")
	ErrNotFound     = errors.New("tmdb: resource not found")
	ErrRateLimited  = errors.New("tmdb: rate limited")
)

const dateLayout = "2006-01-02"

type Api struct {
	url            string
	cl             *http.Client
	lim            *ratelimit.Limiter
	prepareRequest func(r *http.Request) (*http.Request, error)
}

// New returns nil when no api key is configured.
func New(c *cli.Context, cl *http.Client, lim *ratelimit.Limiter) *Api {
	host := c.String(tmdbApiHostFlag)
	port := c.Int(tmdbApiPortFlag)
	secure := c.BoolT(tmdbApiSecureFlag)
	key := c.String(tmdbApiKeyFlag)
	if key == "" {
		return nil
	}
	protocol := "http"
	if secure {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v/3", protocol, host, port)
	log.Infof("tmdb api endpoint %v", u)
	return NewApi(u, key, c.String(tmdbApiLanguageFlag), cl, lim)
}

func NewApi(baseURL string, key string, language string, cl *http.Client, lim *ratelimit.Limiter) *Api {
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		q := r.URL.Query()
		q.Set("api_key", key)
		if language != "" && q.Get("language") == "" {
			q.Set("language", language)
		}
		r.URL.RawQuery = q.Encode()
		r.Header.Set("Accept", "application/json")
		return r, nil
	}
	return &Api{
		url:            strings.TrimSuffix(baseURL, "/"),
		cl:             cl,
		lim:            lim,
		prepareRequest: prepareRequest,
	}
}

type DiscoverParams struct {
	Page     int
	From     time.Time
	To       time.Time
	MinVotes int
	GenreID  int
}

// Discover lists items released between From and To, newest first.
func (api *Api) Discover(ctx context.Context, mt MediaType, p *DiscoverParams) (*DiscoverResponse, error) {
	dateField := "primary_release_date"
	if mt == MediaTypeTV {
		dateField = "first_air_date"
	}
	q := url.Values{}
	page := p.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("sort_by", dateField+".desc")
	if !p.From.IsZero() {
		q.Set(dateField+".gte", p.From.Format(dateLayout))
	}
	if !p.To.IsZero() {
		q.Set(dateField+".lte", p.To.Format(dateLayout))
	}
	if p.MinVotes > 0 {
		q.Set("vote_count.gte", strconv.Itoa(p.MinVotes))
	}
	if p.GenreID != 0 {
		q.Set("with_genres", strconv.Itoa(p.GenreID))
	}
	q.Set("include_adult", "false")

	var resp DiscoverResponse
	if err := api.get(ctx, "/discover/"+mt.String(), q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDetails fetches extended item details including external identifiers.
func (api *Api) GetDetails(ctx context.Context, mt MediaType, id int64) (*Details, error) {
	q := url.Values{}
	q.Set("append_to_response", "external_ids")
	var resp Details
	if err := api.get(ctx, fmt.Sprintf("/%s/%d", mt, id), q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetWatchProviders fetches streaming availability for all regions.
func (api *Api) GetWatchProviders(ctx context.Context, mt MediaType, id int64) (*WatchProvidersResponse, error) {
	var resp WatchProvidersResponse
	if err := api.get(ctx, fmt.Sprintf("/%s/%d/watch/providers", mt, id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate checks the configured key against the live api. Transient failures
// are retried, an invalid key is reported immediately.
func (api *Api) Validate(ctx context.Context) error {
	return retry.Do(
		func() error {
			var cfg map[string]any
			err := api.get(ctx, "/configuration", nil, &cfg)
			if errors.Is(err, ErrUnauthorized) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).Warnf("tmdb key validation attempt %d failed", n+1)
		}),
	)
}

func (api *Api) get(ctx context.Context, path string, q url.Values, dst any) error {
	if err := api.lim.Wait(ctx); err != nil {
		return errors.Wrap(err, "wait for rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", api.url+path, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	req, err = api.prepareRequest(req)
	if err != nil {
		return errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return api.statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func (api *Api) statusError(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&er)
	var base error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		base = ErrUnauthorized
	case http.StatusNotFound:
		base = ErrNotFound
	case http.StatusTooManyRequests:
		base = ErrRateLimited
	default:
		return errors.Errorf("tmdb returned status %d: %s", resp.StatusCode, er.StatusMessage)
	}
	if er.StatusMessage == "" {
		return base
	}
	return errors.WithMessage(base, er.StatusMessage)
}
