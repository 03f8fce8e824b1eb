// Package csvout reads and writes the flat output-row CSVs.
// Column names are fixed by the Row struct tags; absent capacity/count
// fields round-trip as empty cells.
package csvout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/jstrnad/ceny-tepla/models"
)

// YearFileName returns the per-year output file name.
func YearFileName(year int) string {
	return fmt.Sprintf("ceny_tepla_%d.csv", year)
}

// AllYearsFileName is the consolidated output file name.
const AllYearsFileName = "ceny_tepla_vsechny_roky.csv"

// WriteFile writes rows as UTF-8 CSV with a header row, creating parent
// directories as needed.
func WriteFile(path string, rows []models.Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// ReadFile reads a CSV written by WriteFile (or the consolidated file).
func ReadFile(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	var rows []models.Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}
