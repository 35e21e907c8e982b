package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerengine/internal/util"
	"pokerengine/pkg/variant"
)

// Config provides configuration for the engine's commands
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Game struct {
		Variant       string `yaml:"variant"`
		StartingStack int    `yaml:"startingStack" envconfig:"starting_stack"`
		// Seed of the deck shuffle, 0 uses a crypto shuffle
		Seed int64 `yaml:"seed"`
	} `yaml:"game"`
	// Variants are registered alongside the built-in ones
	Variants []variant.Definition `yaml:"variants" ignored:"true"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.Variant = "no-limit-texas-holdem"
	cfg.Game.StartingStack = 200
	cfg.Variants = make([]variant.Definition, 0)

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing file is not an error, the defaults and environment are used.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("%s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("pe", &cfg); err != nil {
		return err
	}

	var result *multierror.Error
	for _, def := range cfg.Variants {
		if err := variant.Register(def); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
