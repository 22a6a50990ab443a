// Package config resolves lifeweeks settings through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/papapumpkin/lifeweeks/internal/lifechart"
	"github.com/papapumpkin/lifeweeks/internal/profile"
)

// ServeConfig holds configuration for the web surface.
type ServeConfig struct {
	Addr    string `mapstructure:"addr"`
	BaseURL string `mapstructure:"base_url"`
}

// Config holds all runtime configuration for lifeweeks.
// Values are populated from .lifeweeks.yaml, LIFEWEEKS_* env vars, and CLI flags.
type Config struct {
	EndYear     int         `mapstructure:"end_year"`
	Locale      string      `mapstructure:"locale"`
	Color       bool        `mapstructure:"color"`
	ProfilePath string      `mapstructure:"profile_path"`
	Verbose     bool        `mapstructure:"verbose"`
	Serve       ServeConfig `mapstructure:"serve"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("end_year", lifechart.DefaultHorizon)
	viper.SetDefault("locale", "en-US")
	viper.SetDefault("color", true)
	viper.SetDefault("profile_path", defaultProfilePath())
	viper.SetDefault("verbose", false)
	viper.SetDefault("serve.addr", ":8080")
	viper.SetDefault("serve.base_url", "http://localhost:8080/")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ProfilePath = expandHome(cfg.ProfilePath)
	return cfg, nil
}

// Validate reports settings that would make every command fail.
func (c Config) Validate() error {
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("config: locale %q: %w", c.Locale, err)
		}
	}
	if c.EndYear < 0 {
		return fmt.Errorf("config: end_year must not be negative, got %d", c.EndYear)
	}
	if strings.TrimSpace(c.Serve.Addr) == "" {
		return fmt.Errorf("config: serve.addr is empty")
	}
	if c.ProfilePath == "" {
		return fmt.Errorf("config: profile_path is empty")
	}
	return nil
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return profile.DefaultFile
	}
	return filepath.Join(home, profile.DefaultFile)
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
