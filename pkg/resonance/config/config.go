// Package config loads server and engine configuration from YAML files
// and the environment, and constructs the lexicon set the engine runs on.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/resonance/pkg/resonance/internalerr"
)

// Config is the full application configuration.
type Config struct {
	Server      Server `yaml:"server"`
	Engine      Engine `yaml:"engine"`
	LexiconPath string `yaml:"lexicon_path"`
}

// Server configures the HTTP surface.
type Server struct {
	Port  string `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

// Engine configures the analysis engine.
type Engine struct {
	CacheSize int `yaml:"cache_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{Port: "5000"},
		Engine: Engine{CacheSize: 100},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv applies environment overrides (PORT, DEBUG, CACHE_SIZE,
// LEXICON_PATH) on top of the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if debug := os.Getenv("DEBUG"); debug != "" {
		cfg.Server.Debug = debug == "1" || debug == "true"
	}
	if size := os.Getenv("CACHE_SIZE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return Config{}, fmt.Errorf("%w: CACHE_SIZE %q", internalerr.ErrInvalidConfig, size)
		}
		cfg.Engine.CacheSize = n
	}
	if path := os.Getenv("LEXICON_PATH"); path != "" {
		cfg.LexiconPath = path
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%w: empty port", internalerr.ErrInvalidConfig)
	}
	if c.Engine.CacheSize < 0 {
		return fmt.Errorf("%w: negative cache size", internalerr.ErrInvalidConfig)
	}
	return nil
}
