// Package config defines the app configuration and loads it from an
// optional YAML file with environment variable overrides. Only ambient
// settings live here; the library's capacity limits are fixed constants.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines the app configuration.
type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	Library  struct {
		Name       string `yaml:"name"`
		Street     string `yaml:"street"`
		Number     string `yaml:"number"`
		PostalCode string `yaml:"postal_code"`
		Locality   string `yaml:"locality"`
	} `yaml:"library"`
	Demo bool `yaml:"-"`
}

// Default returns the configuration used when no file or overrides are
// supplied.
func Default() Config {
	var cfg Config
	cfg.Env = "development"
	cfg.LogLevel = "info"
	cfg.Library.Name = "Librarium"
	cfg.Library.Street = "Main Street"
	cfg.Library.Number = "1"
	cfg.Library.PostalCode = "29001"
	cfg.Library.Locality = "Malaga"
	return cfg
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, err
		}
	}
	if env, ok := os.LookupEnv("LIBRARIUM_ENV"); ok {
		cfg.Env = env
	}
	if level, ok := os.LookupEnv("LIBRARIUM_LOG_LEVEL"); ok {
		cfg.LogLevel = level
	}
	if name, ok := os.LookupEnv("LIBRARIUM_NAME"); ok {
		cfg.Library.Name = name
	}
	return cfg, nil
}
