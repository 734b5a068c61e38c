// Package config resolves foresite's process and site configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable foresite reads.
// The root directory is taken from FORESITE_ROOT.
const EnvPrefix = "FORESITE"

// Config is the resolved process configuration. It is immutable once loaded.
type Config struct {
	Root    string `mapstructure:"root"`
	Verbose bool   `mapstructure:"verbose"`
}

// Options carries in-process overrides. Non-zero values win over the environment.
type Options struct {
	Root    string
	Verbose bool
}

// Load resolves configuration with precedence: override > environment > default.
// An unset root falls back to the current working directory.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	v.SetDefault("root", "")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Root != "" {
		v.Set("root", opts.Root)
	}
	if opts.Verbose {
		v.Set("verbose", true)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cfg.Root = wd
	}

	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", cfg.Root, err)
	}
	cfg.Root = abs

	return &cfg, nil
}
