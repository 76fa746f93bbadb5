// cmd/golazoctl/main.go
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/golazo-app/golazo/internal/config"
)

const (
	configFlag = "config"
	playerFlag = "player"
	allFlag    = "all"
	adminFlag  = "admin"
	fieldFlag  = "field"
	dateFlag   = "date"
	outputFlag = "out"
	stdoutName = "-"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func newApp() *cli.App {
	return &cli.App{
		Name:    "golazoctl",
		Usage:   "Operate the Golazo scoring and field calendar backend",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration",
				Value:   config.DefaultConfigPath,
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cCtx.App.ErrWriter, NoColor: true})
			// Services log through log.Ctx, so the command context carries the logger.
			cCtx.Context = log.Logger.WithContext(cCtx.Context)
			return nil
		},
		Commands: []*cli.Command{
			migrateCommand(),
			scoresCommand(),
			calendarCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("golazoctl failed")
	}
}
