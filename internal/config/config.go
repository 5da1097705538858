// Package config reads and writes the gridview config file at
// ~/.config/gridview/config.toml. Keys are addressed "section.field"
// (e.g. grid.items_per_page) by the CLI config command.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the config.toml file
type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Database DatabaseConfig `toml:"database"`
	Serve    ServeConfig    `toml:"serve"`
}

// GridConfig contains display defaults for the grid
type GridConfig struct {
	ItemsPerPage int    `toml:"items_per_page" config:"grid.items_per_page" default:"10" min:"1" max:"500" desc:"Rows per page"`
	NoColor      bool   `toml:"no_color" config:"grid.no_color" default:"false" desc:"Disable colored output"`
	Theme        string `toml:"theme" config:"grid.theme" default:"dark" desc:"Color theme (dark only for now)"`
}

// DatabaseConfig contains the default database connection
type DatabaseConfig struct {
	URL string `toml:"url" config:"database.url" desc:"PostgreSQL connection URL for gridview query"`
}

// ServeConfig contains defaults for the page server
type ServeConfig struct {
	Addr    string `toml:"addr" config:"serve.addr" default:":8080" desc:"Listen address for gridview serve"`
	PerPage int    `toml:"per_page" config:"serve.per_page" default:"10" min:"1" max:"500" desc:"Server-side page size"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		Grid:  GridConfig{ItemsPerPage: 10, Theme: "dark"},
		Serve: ServeConfig{Addr: ":8080", PerPage: 10},
	}
}

// Path returns the config file location. GRIDVIEW_CONFIG overrides the
// default ~/.config/gridview/config.toml.
func Path() (string, error) {
	if p := os.Getenv("GRIDVIEW_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridview", "config.toml"), nil
}

// Load reads the config file. A missing file is not an error: defaults
// are returned so first runs work without any setup.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// GetValue returns a config value by key (uses reflection)
func (c *Config) GetValue(key string) (string, bool) {
	return getFieldValue(c, key)
}

// SetValue sets a config value by key (uses reflection with validation)
func (c *Config) SetValue(key, value string) error {
	return setFieldValue(c, key, value)
}

// DatabaseURL returns the connection URL from config or environment.
// DATABASE_URL wins so one-off overrides don't need a config edit.
func (c *Config) DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return c.Database.URL
}
