package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logLevelFlag      = "log-level"
	logFormatFlag     = "log-format"
	logFileFlag       = "log-file"
	logFileMaxSize    = "log-file-max-size"
	logFileMaxBackups = "log-file-max-backups"
)

func registerLogFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   logLevelFlag,
			Usage:  "log level (trace, debug, info, warn, error)",
			Value:  "info",
			EnvVar: "LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   logFormatFlag,
			Usage:  "log format (text or json)",
			Value:  "text",
			EnvVar: "LOG_FORMAT",
		},
		cli.StringFlag{
			Name:   logFileFlag,
			Usage:  "also write logs to this file, rotated by size",
			EnvVar: "LOG_FILE",
		},
		cli.IntFlag{
			Name:   logFileMaxSize,
			Usage:  "max log file size in megabytes before rotation",
			Value:  50,
			EnvVar: "LOG_FILE_MAX_SIZE",
		},
		cli.IntFlag{
			Name:   logFileMaxBackups,
			Usage:  "number of rotated log files to keep",
			Value:  3,
			EnvVar: "LOG_FILE_MAX_BACKUPS",
		},
	)
}

func configureLog(c *cli.Context) error {
	lvl, err := log.ParseLevel(c.GlobalString(logLevelFlag))
	if err != nil {
		return errors.Wrap(err, "failed to parse log level")
	}
	log.SetLevel(lvl)

	switch c.GlobalString(logFormatFlag) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("unknown log format %v", c.GlobalString(logFormatFlag))
	}

	if p := c.GlobalString(logFileFlag); p != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   p,
			MaxSize:    c.GlobalInt(logFileMaxSize),
			MaxBackups: c.GlobalInt(logFileMaxBackups),
			Compress:   true,
		}))
	}
	return nil
}
