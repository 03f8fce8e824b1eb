package serve

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/jstrnad/ceny-tepla/internal/common"
	"github.com/jstrnad/ceny-tepla/pkg/dashboard"
	"github.com/jstrnad/ceny-tepla/pkg/geo"
)

// ServeAction starts the dashboard API over the store (or CSV fallback).
func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), 2)
	}

	rows, err := common.LoadRows(cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("no data available, run extract (and import) first: %v", err), 2)
	}

	locations, err := geo.Load(cfg.LocationsFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot load locations file: %v", err), 2)
	}
	logger.Info("location mapping loaded", "entries", locations.Len())

	server := dashboard.NewServer(rows, locations, logger)
	fmt.Printf("Dashboard API listening on %s (%d rows)\n", cfg.ListenAddr, len(rows))
	if err := http.ListenAndServe(cfg.ListenAddr, server.Router()); err != nil {
		return cli.Exit(fmt.Sprintf("server failed: %v", err), 2)
	}
	return nil
}
