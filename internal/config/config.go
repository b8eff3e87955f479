// Package config resolves event-repeater settings from defaults and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultModID is the unique ID content packs declare a dependency on.
const DefaultModID = "misscoriel.eventrepeater"

// Config holds all event-repeater configuration.
type Config struct {
	DBPath   string `env:"EVENT_REPEATER_DB"`
	ModsDir  string `env:"EVENT_REPEATER_MODS"`
	WorkDir  string `env:"EVENT_REPEATER_WORKDIR"`
	LogLevel string `env:"EVENT_REPEATER_LOG_LEVEL"`
	ModID    string `env:"EVENT_REPEATER_MOD_ID"`
}

// Default returns a Config with sensible defaults. Paths are resolved
// against the user's home directory and the process working directory.
func Default() Config {
	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()
	return Config{
		DBPath:   filepath.Join(home, ".event-repeater", "save.db"),
		ModsDir:  filepath.Join(home, ".event-repeater", "Mods"),
		WorkDir:  wd,
		LogLevel: "info",
		ModID:    DefaultModID,
	}
}

// Load returns the defaults overlaid with any EVENT_REPEATER_* variables.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ManualDir is the directory manual repeater lists are saved to.
func (c *Config) ManualDir() string {
	return filepath.Join(c.WorkDir, "ManualRepeaterFiles")
}
