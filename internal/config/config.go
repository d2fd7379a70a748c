// Package config loads the optional TOML configuration file. A missing file
// yields defaults; only an unreadable or malformed one is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/app"
)

type Config struct {
	DBPath          string  `toml:"db_path"`
	LogPath         string  `toml:"log_path"`
	LogLevel        string  `toml:"log_level"`
	LogMaxSizeMB    int     `toml:"log_max_size_mb"`
	LogMaxBackups   int     `toml:"log_max_backups"`
	LogMaxAgeDays   int     `toml:"log_max_age_days"`
	LogCompress     bool    `toml:"log_compress"`
	HydrationGoalML float64 `toml:"hydration_goal_ml"`
}

func defaults() Config {
	return Config{
		LogLevel:        "info",
		LogMaxSizeMB:    10,
		LogMaxBackups:   3,
		LogMaxAgeDays:   14,
		HydrationGoalML: 2000,
	}
}

// Load reads the config at path, or the default location when path is
// empty. Unset fields fall back to defaults.
func Load(path string) (Config, error) {
	cfg := defaults()

	resolved := strings.TrimSpace(path)
	if resolved == "" {
		def, err := app.DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		resolved = def
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fillPaths(cfg)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HydrationGoalML <= 0 {
		cfg.HydrationGoalML = 2000
	}
	return fillPaths(cfg)
}

func fillPaths(cfg Config) (Config, error) {
	if strings.TrimSpace(cfg.DBPath) == "" {
		path, err := app.DefaultDBPath()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = path
	}
	if strings.TrimSpace(cfg.LogPath) == "" {
		path, err := app.DefaultLogPath()
		if err != nil {
			return cfg, err
		}
		cfg.LogPath = path
	}
	return cfg, nil
}
