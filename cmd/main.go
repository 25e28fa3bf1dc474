package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/luca-patrignani/video-poker/config"
)

var (
	Name    string = "videopoker"
	Version string = "unknown"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	app := newApp(logger)
	if err := app.Run(os.Args); err != nil {
		logger.Error("videopoker failed", "error", err)
		os.Exit(1)
	}
}

func newApp(logger *slog.Logger) *cli.App {
	var cfg config.Config

	app := cli.NewApp()
	app.Name = Name
	app.Version = Version
	app.Usage = "Jacks or Better video poker in the terminal"
	app.Flags = []cli.Flag{
		&cli.UintFlag{
			Name:    "balance",
			Aliases: []string{"b"},
			Usage:   "starting credits (overrides VIDEOPOKER_BALANCE)",
		}, &cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn or error (overrides VIDEOPOKER_LOG_LEVEL)",
		}, &cli.StringFlag{
			Name:  "seed",
			Usage: "deal from a reproducible deck (overrides VIDEOPOKER_SEED)",
		},
	}
	app.Before = func(c *cli.Context) error {
		loaded, err := loadConfig(c)
		if err != nil {
			return err
		}
		cfg = loaded
		level, _ := cfg.Level()
		pterm.DefaultLogger.Level = level
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:  "play",
			Usage: "play an interactive session",
			Action: func(c *cli.Context) error {
				return play(cfg, logger)
			},
		},
		{
			Name:  "simulate",
			Usage: "autoplay holding the winning cards and print the session totals",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "rounds",
					Aliases: []string{"n"},
					Usage:   "rounds to play (overrides VIDEOPOKER_SIM_ROUNDS)",
				},
			},
			Action: func(c *cli.Context) error {
				rounds := cfg.SimRounds
				if c.IsSet("rounds") {
					rounds = c.Int("rounds")
				}
				if rounds <= 0 {
					return fmt.Errorf("rounds must be positive, got %d", rounds)
				}
				return runSimulation(cfg, rounds, logger)
			},
		},
		{
			Name:  "paytable",
			Usage: "print the pay table",
			Action: func(c *cli.Context) error {
				out, err := renderPayTable(0)
				if err != nil {
					return err
				}
				pterm.Println(out)
				return nil
			},
		},
	}
	app.Action = func(c *cli.Context) error {
		return play(cfg, logger)
	}
	return app
}

// loadConfig reads the environment and applies the global flags on top.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("balance") {
		cfg.Balance = c.Uint("balance")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.String("seed")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
