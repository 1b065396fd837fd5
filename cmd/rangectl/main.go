// Command rangectl is a small CLI demonstrating the range algebra against
// PostgreSQL-style range literals ("[1,10)", "(,5]", "empty") over the
// int64 element capability.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "rangectl",
		Usage: "inspect and combine PostgreSQL-style integer ranges",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a rangectl.toml config file",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("rangectl: load config: %w", err)
			}
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = logrus.InfoLevel
			}
			log.SetLevel(level)
			if cfg.Format == "json" {
				log.SetFormatter(&logrus.JSONFormatter{})
			}
			c.App.Metadata["config"] = cfg
			return nil
		},
		Commands: []*cli.Command{
			evalCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("rangectl: command failed")
		os.Exit(1)
	}
}
