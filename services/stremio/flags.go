package stremio

import (
	"time"

	"github.com/urfave/cli"
)

const (
	CatalogDeadlineFlag    = "catalog-deadline"
	CatalogMaxItemsFlag    = "catalog-max-items"
	CatalogCacheExpireFlag = "catalog-cache-expire"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.DurationFlag{
			Name:   CatalogDeadlineFlag,
			Usage:  "overall time budget of a single catalog request",
			Value:  25 * time.Second,
			EnvVar: "CATALOG_DEADLINE",
		},
		cli.IntFlag{
			Name:   CatalogMaxItemsFlag,
			Usage:  "maximum number of items per catalog page",
			Value:  20,
			EnvVar: "CATALOG_MAX_ITEMS",
		},
		cli.DurationFlag{
			Name:   CatalogCacheExpireFlag,
			Usage:  "catalog page cache ttl (0 disables caching)",
			EnvVar: "CATALOG_CACHE_EXPIRE",
		},
	)
}
