package common

import (
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	HTTPUserAgentFlag = "http-user-agent"
	HTTPProxyFlag     = "http-proxy"
	HTTPTimeoutFlag   = "http-timeout"
)

func RegisterClientFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   HTTPUserAgentFlag,
			Usage:  "user agent for outgoing provider requests",
			Value:  "recent-catalog/" + Version,
			EnvVar: "HTTP_USER_AGENT",
		},
		cli.StringFlag{
			Name:   HTTPProxyFlag,
			Usage:  "proxy URL for outgoing provider requests (e.g., http://proxy:8080 or socks5://proxy:1080)",
			EnvVar: "HTTP_PROXY_URL",
		},
		cli.DurationFlag{
			Name:   HTTPTimeoutFlag,
			Usage:  "hard timeout of a single provider request",
			Value:  30 * time.Second,
			EnvVar: "HTTP_TIMEOUT",
		},
	)
}

type userAgentTransport struct {
	ua   string
	next http.RoundTripper
}

func (s *userAgentTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if s.ua != "" && r.Header.Get("User-Agent") == "" {
		r = r.Clone(r.Context())
		r.Header.Set("User-Agent", s.ua)
	}
	return s.next.RoundTrip(r)
}

func NewClient(c *cli.Context) (*http.Client, error) {
	return MakeClient(c.String(HTTPUserAgentFlag), c.String(HTTPProxyFlag), c.Duration(HTTPTimeoutFlag))
}

func MakeClient(ua string, proxy string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxy != "" {
		parsedURL, err := url.Parse(proxy)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse proxy url %v", proxy)
		}
		transport.Proxy = http.ProxyURL(parsedURL)
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			ua:   ua,
			next: transport,
		},
	}, nil
}
