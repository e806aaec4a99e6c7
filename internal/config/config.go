// Package config reads the settings shared by the agency command line tool and web server from the environment.
package config

import (
	"github.com/manosdvd/agency/internal/envstruct"
	"github.com/manosdvd/agency/internal/errors"
	"github.com/manosdvd/agency/internal/validation"
)

type Config struct {
	// CasesDir is the directory holding one subdirectory per case.
	CasesDir string `env:"AGENCY_CASES_DIR" envDefault:"./cases"`
	// SQLiteURL is the path to the validation history database or ":memory:".
	SQLiteURL string `env:"AGENCY_SQLITE_URL" envDefault:"./agency.sqlite"`
	// Addr is the address the web server listens on.
	Addr string `env:"AGENCY_ADDR" envDefault:"localhost:4000"`
	// PprofAddr is the loopback address of the profiling server. Profiling is off when empty.
	PprofAddr  string `env:"AGENCY_PPROF_ADDR" envDefault:""`
	Thresholds validation.Thresholds
}

var ErrInvalidThreshold = errors.NewSentinel("threshold must not be negative")

// Load populates a Config using lookupEnv, which has the same signature as os.LookupEnv.
func Load(lookupEnv func(string) (string, bool)) (*Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate config")
	}
	if err := envstruct.Populate(&cfg.Thresholds, lookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate thresholds")
	}
	if cfg.Thresholds.MinRedHerrings < 0 || cfg.Thresholds.MaxClues < 0 || cfg.Thresholds.MaxSuspects < 0 {
		return nil, errors.Wrap(ErrInvalidThreshold, "validate thresholds")
	}
	return &cfg, nil
}
