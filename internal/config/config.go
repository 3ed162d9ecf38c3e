package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/trknhr/ghostfaker/internal/catalog"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "GHOSTFAKER_"

var (
	ErrReadConfig    = errors.New("failed to read config file")
	ErrParsingConfig = errors.New("failed to parse config")
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile   string `yaml:"log_file" env:"LOG_FILE"`
	Icon      string `yaml:"icon" env:"ICON"`
	Match     string `yaml:"match" env:"MATCH"`
	Clipboard bool   `yaml:"clipboard" env:"CLIPBOARD"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		Icon:      "images/icon.png",
		Match:     string(catalog.MatchSubstring),
		Clipboard: true,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/ghostfaker/config.yaml or the platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ghostfaker", "config.yaml")
}

// Load layers defaults, the YAML file and the environment, in that order.
// An explicit path must exist; the default path is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	filePath, required := path, true
	if filePath == "" {
		filePath, required = DefaultPath(), false
	}
	if filePath != "" {
		if err := loadFile(filePath, &cfg, required); err != nil {
			return Config{}, err
		}
	}

	// .env is optional and never overrides variables already set
	_ = godotenv.Load()

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config, required bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("%w %s: %w", ErrParsingConfig, path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := catalog.ParseMatchMode(c.Match); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// MatchMode returns the validated match mode.
func (c Config) MatchMode() catalog.MatchMode {
	mode, err := catalog.ParseMatchMode(c.Match)
	if err != nil {
		return catalog.MatchSubstring
	}
	return mode
}
