package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/services/common"
)

func main() {
	app := cli.NewApp()
	app.Name = "recent-catalog"
	app.Usage = "Serves a catalog of recently released movies and series"
	app.Version = common.Version
	configure(app)
	err := app.Run(os.Args)
	if err != nil {
		log.WithError(err).Fatal("failed to serve application")
	}
}
