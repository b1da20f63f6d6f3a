package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from HYPERCART_* environment variables. Command-line flags take
// their defaults from it, so a flag always wins over the environment.
type Config struct {
	Dir     string `env:"HYPERCART_DIR"`
	Format  string `env:"HYPERCART_FORMAT" envDefault:"json"`
	LogFile string `env:"HYPERCART_LOG_FILE"`

	ScrollInterval  time.Duration `env:"HYPERCART_SCROLL_INTERVAL" envDefault:"40ms"`
	ScrollStep      float64       `env:"HYPERCART_SCROLL_STEP" envDefault:"2"`
	SettleFrequency float64       `env:"HYPERCART_SETTLE_FREQUENCY" envDefault:"14"`
	SettleDamping   float64       `env:"HYPERCART_SETTLE_DAMPING" envDefault:"1"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case "json", "table":
	default:
		return fmt.Errorf("unknown format: %s (want json|table)", c.Format)
	}
	if c.ScrollInterval <= 0 {
		return fmt.Errorf("scroll interval must be positive: %s", c.ScrollInterval)
	}
	if c.ScrollStep < 0 {
		return fmt.Errorf("scroll step must not be negative: %v", c.ScrollStep)
	}
	if c.SettleFrequency <= 0 {
		return fmt.Errorf("settle frequency must be positive: %v", c.SettleFrequency)
	}
	return nil
}
