package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	omdbApiKeyFlag    = "omdb-api-key"
	omdbApiSecureFlag = "omdb-api-secure"
	omdbApiHostFlag   = "omdb-api-host"
	omdbApiPortFlag   = "omdb-api-port"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   omdbApiHostFlag,
			Usage:  "omdb api host",
			EnvVar: "OMDB_API_HOST",
			Value:  "www.omdbapi.com",
		},
		cli.IntFlag{
			Name:   omdbApiPortFlag,
			Usage:  "omdb api port",
			EnvVar: "OMDB_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   omdbApiSecureFlag,
			Usage:  "omdb api secure (https)",
			EnvVar: "OMDB_API_SECURE",
		},
		cli.StringFlag{
			Name:   omdbApiKeyFlag,
			Usage:  "omdb api key",
			Value:  "",
			EnvVar: "OMDB_API_KEY",
		},
	)
}

const NA = "N/A"

type OmdbResponse struct {
	ImdbID     string
	Title      string
	Type       OmdbType
	ImdbRating *float64
	ImdbVotes  string
	Raw        map[string]any
}

type OmdbType string

const (
	OmdbTypeMovie   OmdbType = "movie"
	OmdbTypeSeries  OmdbType = "series"
	OmdbTypeEpisode OmdbType = "episode"
)

func (t OmdbType) String() string {
	return string(t)
}

type Api struct {
	url            string
	cl             *http.Client
	prepareRequest func(r *http.Request) (*http.Request, error)
}

// New returns nil when no api key is configured, rating lookups are skipped then.
func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(omdbApiHostFlag)
	port := c.Int(omdbApiPortFlag)
	secure := c.BoolT(omdbApiSecureFlag)
	key := c.String(omdbApiKeyFlag)
	if key == "" {
		return nil
	}
	protocol := "http"
	if secure {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v", protocol, host, port)
	log.Infof("omdb api endpoint %v", u)
	return NewApi(u, key, cl)
}

func NewApi(u string, key string, cl *http.Client) *Api {
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		q := r.URL.Query()
		q.Set("apikey", key)
		r.URL.RawQuery = q.Encode()
		return r, nil
	}
	return &Api{
		url:            strings.TrimSuffix(u, "/"),
		cl:             cl,
		prepareRequest: prepareRequest,
	}
}

// GetByImdbID returns nil, nil when omdb has no record for the id.
func (api *Api) GetByImdbID(ctx context.Context, imdbID string) (*OmdbResponse, error) {
	reqURL := fmt.Sprintf("%s/", api.url)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	q.Set("i", imdbID)
	req.URL.RawQuery = q.Encode()

	req, err = api.prepareRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "decode response with status %d", resp.StatusCode)
	}

	if r, ok := raw["Response"].(string); !ok || r != "True" {
		if strings.Contains(strings.ToLower(fmt.Sprintf("%s", raw["Error"])), "not found") {
			return nil, nil
		}
		return nil, errors.Errorf("omdb error: %v", raw["Error"])
	}

	id, _ := raw["imdbID"].(string)
	title, _ := raw["Title"].(string)
	tpe, _ := raw["Type"].(string)
	votes, _ := raw["imdbVotes"].(string)

	return &OmdbResponse{
		ImdbID:     id,
		Title:      title,
		Type:       OmdbType(tpe),
		ImdbRating: parseRating(raw["imdbRating"]),
		ImdbVotes:  votes,
		Raw:        raw,
	}, nil
}

func parseRating(v any) *float64 {
	rating, _ := v.(string)
	if rating == "" || rating == NA {
		return nil
	}
	pf, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return nil
	}
	return &pf
}
