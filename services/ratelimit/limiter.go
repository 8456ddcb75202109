package ratelimit

import (
	"context"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/time/rate"
)

const (
	minIntervalFlag = "tmdb-min-interval"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.DurationFlag{
			Name:   minIntervalFlag,
			Usage:  "minimum interval between metadata provider requests",
			EnvVar: "TMDB_MIN_INTERVAL",
			Value:  300 * time.Millisecond,
		},
	)
}

// Limiter spaces out calls so that consecutive grants are at least interval apart.
// It holds a single permit, so there is no burst.
type Limiter struct {
	l        *rate.Limiter
	interval time.Duration
}

func New(c *cli.Context) *Limiter {
	return NewLimiter(c.Duration(minIntervalFlag))
}

func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{
			l: rate.NewLimiter(rate.Inf, 1),
		}
	}
	return &Limiter{
		l:        rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
	}
}

func (s *Limiter) Interval() time.Duration {
	return s.interval
}

// Wait blocks until the next slot is available. It fails only when ctx is done
// or its deadline would pass before the slot opens.
func (s *Limiter) Wait(ctx context.Context) error {
	if s == nil || s.l == nil {
		return nil
	}
	return s.l.Wait(ctx)
}
