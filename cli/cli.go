package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "sumbench"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Compare the cost of concurrent-accumulation disciplines on one summation workload",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Run one reduction strategy, or all of them",
		ArgsUsage: "[STRATEGY|all]",
		Action:    app.run,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Usage: "Number of dataset elements",
				Value: defaultSize,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of concurrent workers",
				Value:   defaultWorkers,
			},
			&cli.Int64Flag{
				Name:  "min",
				Usage: "Smallest value the generator may draw",
				Value: 1,
			},
			&cli.Int64Flag{
				Name:  "max",
				Usage: "Largest value the generator may draw",
				Value: 10,
			},
			&cli.IntFlag{
				Name:  "repeat",
				Usage: "Repeat the whole strategy matrix this many times",
				Value: 1,
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "list",
		Usage:  "List available reduction strategies",
		Action: app.list,
	})
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit[:8], date)
	}
}
