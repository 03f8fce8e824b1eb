// Package extract orchestrates the extraction run: every page of every
// yearly bulletin PDF through the classifier and reconstructor, out to
// per-year and consolidated CSVs.
//
// Files and pages are processed strictly in sequence. The run always
// completes: an unreadable PDF is logged and yields no rows for that file,
// a bad line is logged and skipped, and the Stats report says how much was
// lost.
package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/jstrnad/ceny-tepla/models"
	"github.com/jstrnad/ceny-tepla/pkg/classifier"
	"github.com/jstrnad/ceny-tepla/pkg/csvout"
	"github.com/jstrnad/ceny-tepla/pkg/pdftext"
	"github.com/jstrnad/ceny-tepla/pkg/reconstruct"
)

// fileNameRe captures the year from bulletin file names. Anything else in
// the directory is skipped without comment.
var fileNameRe = regexp.MustCompile(`^vyslednecenytepla(\d{4})\.pdf$`)

// YearFromFileName extracts the four-digit year from a bulletin file name.
func YearFromFileName(name string) (int, bool) {
	m := fileNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// Stats aggregates run diagnostics. Skip counts are the operator's only
// signal that input was lost, so Run surfaces them instead of failing.
type Stats struct {
	FilesProcessed int
	FilesFailed    int
	LinesParsed    int
	LinesSkipped   int
	RowsEmitted    int
	Years          []int
}

// pageReader lets tests drive File without real PDFs.
type pageReader func(path string) ([]string, error)

// Runner runs extractions with a shared logger.
type Runner struct {
	logger *slog.Logger
	pages  pageReader
}

// NewRunner returns a Runner extracting page text via pdfcpu.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger, pages: pdftext.PageTexts}
}

// File extracts all rows from one bulletin PDF, tagging them with year.
// An unreadable file is the only error; everything below file level is
// absorbed into stats.
func (r *Runner) File(path string, year int, stats *Stats) ([]models.Row, error) {
	pages, err := r.pages(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	r.logger.Info("extracting bulletin", "path", path, "year", year, "pages", len(pages))

	var rows []models.Row
	for pageNr, text := range pages {
		for _, line := range classifier.DataLines(text) {
			rec, err := reconstruct.Line(line)
			if err != nil {
				stats.LinesSkipped++
				r.logger.Warn("skipping line",
					"path", path, "page", pageNr+1, "reason", err, "line", line)
				continue
			}
			stats.LinesParsed++
			rows = append(rows, rec.Rows(year)...)
		}
	}

	stats.RowsEmitted += len(rows)
	return rows, nil
}

// Run processes every bulletin PDF in pdfDir and writes the per-year CSVs
// plus the consolidated file into csvDir. It fails only when the directory
// itself is unreadable or an output cannot be written; per-file failures
// are logged and counted.
func (r *Runner) Run(pdfDir, csvDir string) (*Stats, error) {
	entries, err := os.ReadDir(pdfDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	stats := &Stats{}
	var allRows []models.Row

	for _, name := range names {
		year, ok := YearFromFileName(name)
		if !ok {
			continue
		}

		rows, err := r.File(filepath.Join(pdfDir, name), year, stats)
		if err != nil {
			stats.FilesFailed++
			r.logger.Error("failed to extract bulletin", "file", name, "error", err)
			continue
		}
		stats.FilesProcessed++
		stats.Years = append(stats.Years, year)

		if len(rows) == 0 {
			r.logger.Warn("bulletin produced no rows", "file", name, "year", year)
			continue
		}

		yearPath := filepath.Join(csvDir, csvout.YearFileName(year))
		if err := csvout.WriteFile(yearPath, rows); err != nil {
			return nil, err
		}
		r.logger.Info("wrote year CSV", "path", yearPath, "rows", len(rows))

		allRows = append(allRows, rows...)
	}

	if len(allRows) > 0 {
		allPath := filepath.Join(csvDir, csvout.AllYearsFileName)
		if err := csvout.WriteFile(allPath, allRows); err != nil {
			return nil, err
		}
		r.logger.Info("wrote consolidated CSV", "path", allPath, "rows", len(allRows))
	}

	return stats, nil
}
