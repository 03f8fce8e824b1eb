package importdb

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/jstrnad/ceny-tepla/internal/common"
	"github.com/jstrnad/ceny-tepla/pkg/csvout"
	"github.com/jstrnad/ceny-tepla/pkg/db"
)

// ImportAction loads the consolidated CSV into the sqlite star schema.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), 2)
	}

	csvPath := c.String("csv")
	if csvPath == "" {
		csvPath = filepath.Join(cfg.CSVDir, csvout.AllYearsFileName)
	}

	rows, err := csvout.ReadFile(csvPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot read %s, run extract first: %v", csvPath, err), 2)
	}
	logger.Info("read consolidated CSV", "path", csvPath, "rows", len(rows))

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot open database: %v", err), 2)
	}
	defer store.Close()

	stats, err := store.ImportRows(rows)
	if err != nil {
		return cli.Exit(fmt.Sprintf("import failed: %v", err), 2)
	}

	fmt.Printf("Imported %d row(s) into %s, skipped %d with unresolved keys\n",
		stats.Inserted, store.Path(), stats.Skipped)
	return nil
}
