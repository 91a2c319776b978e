// Package bench measures smallvec.Vector against a plain slice baseline
// across a configurable grid of element kinds and sequence lengths.
package bench

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config describes the benchmark grid
type Config struct {
	// Sizes is the list of element counts each scenario is run with
	Sizes []int `mapstructure:"sizes" yaml:"sizes"`
	// Elements is the list of element kinds to measure: "int64", "uuid"
	Elements []string `mapstructure:"elements" yaml:"elements"`
}

// DefaultConfig returns the grid used when no config file or flags are given
func DefaultConfig() Config {
	return Config{
		Sizes:    []int{4, 8, 64, 1024},
		Elements: []string{"int64", "uuid"},
	}
}

// Validate checks that the grid is runnable
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("invalid size %d: must be positive", s)
		}
	}
	if len(c.Elements) == 0 {
		return fmt.Errorf("no element kinds configured")
	}
	for _, e := range c.Elements {
		if _, err := scenariosFor(e, 1); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig builds a Config from defaults, an optional config file, and
// SMALLVEC_* environment variables, in increasing precedence.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("sizes", def.Sizes)
	v.SetDefault("elements", def.Elements)

	v.SetEnvPrefix("SMALLVEC")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
