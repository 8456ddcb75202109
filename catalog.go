package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/services/common"
	"github.com/webtor-io/recent-catalog/services/stremio"
)

const (
	catalogTypeFlag  = "type"
	catalogSkipFlag  = "skip"
	catalogGenreFlag = "genre"
)

func makeCatalogCMD() cli.Command {
	catalogCMD := cli.Command{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "Prints a single catalog page as json",
		Action:  catalog,
	}
	configureCatalog(&catalogCMD)
	return catalogCMD
}

func configureCatalog(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  catalogTypeFlag,
			Usage: "content type (movie or series)",
			Value: "movie",
		},
		cli.IntFlag{
			Name:  catalogSkipFlag,
			Usage: "number of items to skip",
		},
		cli.StringFlag{
			Name:  catalogGenreFlag,
			Usage: "genre filter",
		},
	)
	c.Flags = configureProviders(c.Flags)
}

func catalog(c *cli.Context) error {
	// Setting HTTP Client
	cl, err := common.NewClient(c)
	if err != nil {
		return err
	}

	// Setting Stremio Builder
	sb, err := makeBuilder(c, cl)
	if err != nil {
		return err
	}

	cas, err := sb.BuildCatalogService()
	if err != nil {
		return err
	}
	req := stremio.NewCatalogRequest(c.String(catalogTypeFlag), c.Int(catalogSkipFlag), c.String(catalogGenreFlag))
	resp, err := cas.GetCatalog(context.Background(), req)
	if err != nil {
		return errors.Wrap(err, "failed to get catalog")
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
