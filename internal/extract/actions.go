package extract

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jstrnad/ceny-tepla/internal/common"
	"github.com/jstrnad/ceny-tepla/pkg/extract"
)

// ExtractAction runs the PDF extraction over the configured bulletin
// directory and writes per-year plus consolidated CSVs.
func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), 2)
	}

	runner := extract.NewRunner(logger)
	stats, err := runner.Run(cfg.PDFDir, cfg.CSVDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("extraction failed: %v", err), 2)
	}

	fmt.Printf("Processed %d bulletin(s), %d failed\n", stats.FilesProcessed, stats.FilesFailed)
	fmt.Printf("Lines parsed: %d, skipped: %d\n", stats.LinesParsed, stats.LinesSkipped)
	fmt.Printf("Rows written: %d (years: %v)\n", stats.RowsEmitted, stats.Years)

	if stats.FilesProcessed == 0 {
		fmt.Printf("No files matching vyslednecenytepla<YYYY>.pdf found in %s\n", cfg.PDFDir)
	}
	return nil
}
