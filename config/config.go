// Package config loads the video poker settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/video-poker/domain/poker"
)

// Config holds the settings shared by every command. CLI flags override
// the values read from the environment.
type Config struct {
	Balance   uint   `env:"VIDEOPOKER_BALANCE"    envDefault:"100"`
	LogLevel  string `env:"VIDEOPOKER_LOG_LEVEL"  envDefault:"info"`
	Seed      string `env:"VIDEOPOKER_SEED"`
	SimRounds int    `env:"VIDEOPOKER_SIM_ROUNDS" envDefault:"1000"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that the parser cannot.
func (c Config) Validate() error {
	if c.Balance < poker.MinBet {
		return fmt.Errorf("balance %d is below the minimum bet %d", c.Balance, poker.MinBet)
	}
	if c.SimRounds <= 0 {
		return fmt.Errorf("simulation rounds must be positive, got %d", c.SimRounds)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto the pterm logger level used by the slog handler.
func (c Config) Level() (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// SeedBytes returns the seed for a reproducible deck, nil when unset.
func (c Config) SeedBytes() []byte {
	if c.Seed == "" {
		return nil
	}
	return []byte(c.Seed)
}
