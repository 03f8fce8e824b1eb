package forecastcmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/jstrnad/ceny-tepla/internal/common"
	"github.com/jstrnad/ceny-tepla/pkg/dataset"
	"github.com/jstrnad/ceny-tepla/pkg/forecast"
)

// ForecastAction prints a price forecast for a filtered series as YAML.
func ForecastAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config error: %v", err), 2)
	}

	rows, err := common.LoadRows(cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("no data available, run extract first: %v", err), 2)
	}

	filtered := dataset.Apply(rows, dataset.Filter{
		RegionCode:   c.String("kraj"),
		DeliveryType: c.String("typ"),
		Locality:     c.String("lokalita"),
	})

	yearly := dataset.MeanPriceByYear(filtered)
	series := make([]forecast.Point, 0, len(yearly))
	for _, yp := range yearly {
		series = append(series, forecast.Point{Year: yp.Year, Price: yp.MeanPrice})
	}

	predicted, err := forecast.Linear(series, c.Int("obdobi"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot forecast: %v", err), 1)
	}

	out, err := yaml.Marshal(map[string]any{
		"historie": series,
		"predikce": predicted,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to marshal output: %v", err), 2)
	}
	fmt.Print(string(out))
	return nil
}
