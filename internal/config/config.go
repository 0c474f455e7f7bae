package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const DefaultWidth = 1024

// DevConnectionString points at a local database file, used when DEV_MODE=true.
const DevConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB      DBConfig      `toml:"database"`
	Display DisplayConfig `toml:"display"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type DisplayConfig struct {
	Dark  bool `toml:"dark"`
	Width int  `toml:"width"` // Screen width the chart styling is chosen for.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "recap")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from path, or from the default location when path is empty.
// A missing file is not an error: the defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg := Config{Display: DisplayConfig{Width: DefaultWidth}}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if cfg.Display.Width <= 0 {
		cfg.Display.Width = DefaultWidth
	}

	// A .env file is optional.
	_ = godotenv.Load()
	if url := os.Getenv("RECAP_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = DevConnectionString
	}

	return &cfg, nil
}
