package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jstrnad/ceny-tepla/internal/extract"
	"github.com/jstrnad/ceny-tepla/internal/forecastcmd"
	"github.com/jstrnad/ceny-tepla/internal/importdb"
	"github.com/jstrnad/ceny-tepla/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "ceny-tepla",
		Usage: "extract, store and serve ERÚ district heating price data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "log errors only",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "extract",
				Usage: "parse bulletin PDFs into per-year and consolidated CSVs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pdf-dir", Usage: "directory with vyslednecenytepla<YYYY>.pdf files"},
					&cli.StringFlag{Name: "csv-dir", Usage: "directory for CSV outputs"},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:  "import",
				Usage: "load the consolidated CSV into the sqlite store",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "csv", Usage: "consolidated CSV path (defaults to <csv-dir>/ceny_tepla_vsechny_roky.csv)"},
					&cli.StringFlag{Name: "csv-dir", Usage: "directory with CSV outputs"},
					&cli.StringFlag{Name: "db", Usage: "sqlite database path"},
				},
				Action: importdb.ImportAction,
			},
			{
				Name:  "serve",
				Usage: "serve the dashboard API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "sqlite database path"},
					&cli.StringFlag{Name: "csv-dir", Usage: "CSV fallback directory"},
					&cli.StringFlag{Name: "locations", Usage: "locality coordinate mapping JSON"},
					&cli.StringFlag{Name: "listen", Usage: "bind address"},
				},
				Action: serve.ServeAction,
			},
			{
				Name:  "forecast",
				Usage: "print a price forecast for a filtered series",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "sqlite database path"},
					&cli.StringFlag{Name: "csv-dir", Usage: "CSV fallback directory"},
					&cli.StringFlag{Name: "kraj", Usage: "region code filter"},
					&cli.StringFlag{Name: "typ", Usage: "delivery type filter"},
					&cli.StringFlag{Name: "lokalita", Usage: "locality substring filter"},
					&cli.IntFlag{Name: "obdobi", Value: 5, Usage: "forecast periods (years)"},
				},
				Action: forecastcmd.ForecastAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
