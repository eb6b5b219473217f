package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Parse loads the configuration. When path is set the file (YAML, JSON or
// TOML by extension) is read first and the environment overrides it.
func Parse(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse cfg: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("parse cfg: %w", err)
	}
	return cfg, nil
}

// Usage describes the supported environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
