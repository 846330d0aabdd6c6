// Package config reads runtime tuning knobs from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the adjustable playback parameters. Defaults give a
// ~11 second sweep over the full 200-year domain.
type Config struct {
	// TickInterval is the sweep cadence per year.
	TickInterval time.Duration `env:"GRANTMAP_TICK" envDefault:"55ms"`
	// SoftYears is the fade band width around the hard year window.
	SoftYears int `env:"GRANTMAP_SOFT_YEARS" envDefault:"1"`
	// Muted starts the engine with sound triggers disabled.
	Muted bool `env:"GRANTMAP_MUTED" envDefault:"false"`
	// Volume is the master gain, 0..1.
	Volume float64 `env:"GRANTMAP_VOLUME" envDefault:"0.9"`
}

// Load parses the environment and validates ranges.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if cfg.TickInterval < 10*time.Millisecond || cfg.TickInterval > 2*time.Second {
		return Config{}, fmt.Errorf("GRANTMAP_TICK %v out of range (10ms..2s)", cfg.TickInterval)
	}
	if cfg.SoftYears < 0 || cfg.SoftYears > 20 {
		return Config{}, fmt.Errorf("GRANTMAP_SOFT_YEARS %d out of range (0..20)", cfg.SoftYears)
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return Config{}, fmt.Errorf("GRANTMAP_VOLUME %v out of range (0..1)", cfg.Volume)
	}
	return cfg, nil
}
