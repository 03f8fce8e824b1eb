package extract

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jstrnad/ceny-tepla/pkg/csvout"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestYearFromFileName(t *testing.T) {
	cases := []struct {
		name     string
		wantYear int
		wantOK   bool
	}{
		{"vyslednecenytepla2022.pdf", 2022, true},
		{"vyslednecenytepla1999.pdf", 1999, true},
		{"other.pdf", 0, false},
		{"vyslednecenytepla22.pdf", 0, false},
		{"vyslednecenytepla2022.csv", 0, false},
		{"xvyslednecenytepla2022.pdf", 0, false},
	}
	for _, tc := range cases {
		year, ok := YearFromFileName(tc.name)
		if year != tc.wantYear || ok != tc.wantOK {
			t.Errorf("YearFromFileName(%q) = %d, %v, want %d, %v",
				tc.name, year, ok, tc.wantYear, tc.wantOK)
		}
	}
}

const samplePage = "Cenová lokalita Kraj\n" +
	"Teplárna Brno B 10.5 5.2 0.0 80.1 4.2 120.50 3400 15000 250.50 12000.0\n" +
	"malformed continuation without region token 1.0 2.0\n" +
	"Výtopna Kladno S 0.0 0.0 0.0 100.0 0.0 15.0 120 450 310.0 850.5 298.0 400.0\n"

func TestFile_CountsAndRows(t *testing.T) {
	r := &Runner{
		logger: discardLogger(),
		pages: func(path string) ([]string, error) {
			return []string{samplePage, "Cenová lokalita\n"}, nil
		},
	}

	stats := &Stats{}
	rows, err := r.File("test.pdf", 2022, stats)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	// Brno yields 1 delivery row, Kladno 2.
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for _, row := range rows {
		if row.Year != 2022 {
			t.Errorf("Year = %d, want 2022", row.Year)
		}
	}

	if stats.LinesParsed != 2 {
		t.Errorf("LinesParsed = %d, want 2", stats.LinesParsed)
	}
	if stats.LinesSkipped != 1 {
		t.Errorf("LinesSkipped = %d, want 1", stats.LinesSkipped)
	}
	if stats.RowsEmitted != 3 {
		t.Errorf("RowsEmitted = %d, want 3", stats.RowsEmitted)
	}
}

func TestFile_UnreadablePDF(t *testing.T) {
	r := &Runner{
		logger: discardLogger(),
		pages: func(path string) ([]string, error) {
			return nil, errors.New("not a pdf")
		},
	}

	stats := &Stats{}
	if _, err := r.File("broken.pdf", 2022, stats); err == nil {
		t.Fatal("File() error = nil, want error for unreadable PDF")
	}
}

func TestRun_WritesPerYearAndConsolidated(t *testing.T) {
	pdfDir := t.TempDir()
	csvDir := filepath.Join(t.TempDir(), "csv")

	for _, name := range []string{
		"vyslednecenytepla2021.pdf",
		"vyslednecenytepla2022.pdf",
		"poznamky.txt", // silently skipped
	} {
		if err := os.WriteFile(filepath.Join(pdfDir, name), []byte("stub"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	r := &Runner{
		logger: discardLogger(),
		pages: func(path string) ([]string, error) {
			return []string{samplePage}, nil
		},
	}

	stats, err := r.Run(pdfDir, csvDir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", stats.FilesProcessed)
	}
	if stats.FilesFailed != 0 {
		t.Errorf("FilesFailed = %d, want 0", stats.FilesFailed)
	}

	for _, year := range []int{2021, 2022} {
		rows, err := csvout.ReadFile(filepath.Join(csvDir, csvout.YearFileName(year)))
		if err != nil {
			t.Fatalf("reading year %d CSV: %v", year, err)
		}
		if len(rows) != 3 {
			t.Errorf("year %d rows = %d, want 3", year, len(rows))
		}
		for _, row := range rows {
			if row.Year != year {
				t.Errorf("row tagged %d in %d file", row.Year, year)
			}
		}
	}

	all, err := csvout.ReadFile(filepath.Join(csvDir, csvout.AllYearsFileName))
	if err != nil {
		t.Fatalf("reading consolidated CSV: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("consolidated rows = %d, want 6", len(all))
	}
}

func TestRun_FileFailureDoesNotAbortBatch(t *testing.T) {
	pdfDir := t.TempDir()
	csvDir := t.TempDir()

	for _, name := range []string{"vyslednecenytepla2021.pdf", "vyslednecenytepla2022.pdf"} {
		if err := os.WriteFile(filepath.Join(pdfDir, name), []byte("stub"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	r := &Runner{
		logger: discardLogger(),
		pages: func(path string) ([]string, error) {
			if filepath.Base(path) == "vyslednecenytepla2021.pdf" {
				return nil, errors.New("corrupt file")
			}
			return []string{samplePage}, nil
		},
	}

	stats, err := r.Run(pdfDir, csvDir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.FilesFailed != 1 || stats.FilesProcessed != 1 {
		t.Errorf("failed/processed = %d/%d, want 1/1", stats.FilesFailed, stats.FilesProcessed)
	}

	if _, err := os.Stat(filepath.Join(csvDir, csvout.YearFileName(2022))); err != nil {
		t.Errorf("2022 CSV missing after partial failure: %v", err)
	}
	if _, err := os.Stat(filepath.Join(csvDir, csvout.YearFileName(2021))); !os.IsNotExist(err) {
		t.Errorf("2021 CSV should not exist, stat err = %v", err)
	}
}
