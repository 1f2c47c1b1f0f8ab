// Package config loads viewer settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every user-tunable setting.
type Config struct {
	Viewer ViewerConfig `yaml:"viewer"`
}

// ViewerConfig controls paging and cell rendering in the table viewer.
type ViewerConfig struct {
	RowsPerPage    int `yaml:"rows_per_page"`
	ColumnsPerPage int `yaml:"columns_per_page"`
	TablesPerPage  int `yaml:"tables_per_page"`
	MaxCellWidth   int `yaml:"max_cell_width"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Viewer: ViewerConfig{
			RowsPerPage:    20,
			ColumnsPerPage: 5,
			TablesPerPage:  20,
			MaxCellWidth:   30,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sqlnav", "config.yaml"), nil
}

// Load reads settings from path. An empty path means the per-user location,
// where a missing file is not an error; an explicit path must exist. Fields
// the file leaves out, or sets to zero or below, keep their defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces non-positive paging values with the defaults so the
// viewer never divides by zero.
func (c *Config) normalize() {
	def := Default().Viewer
	v := &c.Viewer
	if v.RowsPerPage <= 0 {
		v.RowsPerPage = def.RowsPerPage
	}
	if v.ColumnsPerPage <= 0 {
		v.ColumnsPerPage = def.ColumnsPerPage
	}
	if v.TablesPerPage <= 0 {
		v.TablesPerPage = def.TablesPerPage
	}
	if v.MaxCellWidth <= 0 {
		v.MaxCellWidth = def.MaxCellWidth
	}
}
