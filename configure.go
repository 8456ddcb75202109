package main

import (
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	app.Flags = registerLogFlags(app.Flags)
	app.Before = configureLog
	serveCMD := makeServeCMD()
	catalogCMD := makeCatalogCMD()
	app.Commands = []cli.Command{serveCMD, catalogCMD}
}
