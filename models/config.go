// Package models defines the shared domain types and runtime configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration. Values come from config.yaml and can
// be overridden per-command by CLI flags.
type Config struct {
	// PDFDir is the directory scanned for vyslednecenytepla<YYYY>.pdf files.
	PDFDir string `yaml:"pdf_dir"`
	// CSVDir is where per-year and consolidated CSV outputs are written.
	CSVDir string `yaml:"csv_dir"`
	// DBPath is the sqlite database file.
	DBPath string `yaml:"db_path"`
	// LocationsFile maps "lokalita|kod_kraje" keys to coordinates.
	LocationsFile string `yaml:"locations_file"`
	// ListenAddr is the dashboard API bind address.
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultConfig returns the paths used when no config file is present.
func DefaultConfig() Config {
	return Config{
		PDFDir:        "data/pdf",
		CSVDir:        "data/csv",
		DBPath:        "ceny_tepla.db",
		LocationsFile: "data/mapovani_lokalit.json",
		ListenAddr:    ":8050",
	}
}

// LoadConfig reads a YAML config file, falling back to defaults for any
// field the file omits. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PDFDir == "" {
		cfg.PDFDir = DefaultConfig().PDFDir
	}
	if cfg.CSVDir == "" {
		cfg.CSVDir = DefaultConfig().CSVDir
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultConfig().DBPath
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}

	return cfg, nil
}
