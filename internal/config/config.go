package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "ORGMETA_"

// Config holds everything a run needs.
type Config struct {
	ContributorsPattern string `env:"CONTRIBUTORS" envDefault:"contributors/*.toml"`
	TeamsPattern        string `env:"TEAMS" envDefault:"teams/*.toml"`

	ContributorSchema string `env:"CONTRIBUTOR_SCHEMA" envDefault:"schemas/contributor.schema.json"`
	TeamSchema        string `env:"TEAM_SCHEMA" envDefault:"schemas/team.schema.json"`

	// StrictDuplicates rejects two files with the same kind and base name.
	StrictDuplicates bool `env:"STRICT" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// FromEnvironment reads the configuration from the given variables instead
// of the process environment.
func FromEnvironment(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the values the rest of the program relies on.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ContributorsPattern) == "" {
		errs = append(errs, errors.New("contributors pattern cannot be empty"))
	}
	if strings.TrimSpace(c.TeamsPattern) == "" {
		errs = append(errs, errors.New("teams pattern cannot be empty"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat))
	}

	return errors.Join(errs...)
}
