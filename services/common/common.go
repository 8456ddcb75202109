package common

import (
	"github.com/urfave/cli"
)

// Version is reported by the manifest and the index page.
const Version = "0.1.0"

var (
	DomainFlag = "domain"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   DomainFlag,
			Usage:  "public base url of the addon",
			Value:  "http://localhost:8080",
			EnvVar: "DOMAIN",
		},
	)

	return f
}
