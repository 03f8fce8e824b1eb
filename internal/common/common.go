// Package common holds helpers shared by the CLI actions.
package common

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/jstrnad/ceny-tepla/models"
	"github.com/jstrnad/ceny-tepla/pkg/csvout"
	"github.com/jstrnad/ceny-tepla/pkg/db"
)

// NewLogger builds the JSON logger the actions share. --quiet keeps only
// errors; stdout stays free for command output.
func NewLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// LoadConfig reads the config file named by --config and applies per-flag
// overrides.
func LoadConfig(c *cli.Context) (models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("pdf-dir") {
		cfg.PDFDir = c.String("pdf-dir")
	}
	if c.IsSet("csv-dir") {
		cfg.CSVDir = c.String("csv-dir")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("locations") {
		cfg.LocationsFile = c.String("locations")
	}
	if c.IsSet("listen") {
		cfg.ListenAddr = c.String("listen")
	}
	return cfg, nil
}

// LoadRows loads the flat row set the dashboard and forecaster work over:
// the sqlite store when it exists and holds data, the consolidated CSV
// otherwise.
func LoadRows(cfg models.Config, logger *slog.Logger) ([]models.Row, error) {
	if _, err := os.Stat(cfg.DBPath); err == nil {
		store, err := db.Open(cfg.DBPath)
		if err == nil {
			defer store.Close()
			rows, err := store.FlatRows()
			if err == nil && len(rows) > 0 {
				logger.Info("loaded rows from database", "path", cfg.DBPath, "rows", len(rows))
				return rows, nil
			}
			if err != nil {
				logger.Warn("database read failed, falling back to CSV", "error", err)
			}
		} else {
			logger.Warn("database open failed, falling back to CSV", "error", err)
		}
	}

	csvPath := filepath.Join(cfg.CSVDir, csvout.AllYearsFileName)
	rows, err := csvout.ReadFile(csvPath)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded rows from CSV", "path", csvPath, "rows", len(rows))
	return rows, nil
}
