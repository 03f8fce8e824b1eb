// Package forecast projects future mean heat prices from a yearly series.
//
// Contract: input is an ordered (year, mean price) series with at least two
// distinct years; output is `periods` further (year, predicted price)
// points continuing from the last input year. The model inside is an
// ordinary-least-squares linear trend; callers should treat it as a black
// box behind this contract.
package forecast

import "errors"

// ErrTooShort is returned when the input series has fewer than two
// distinct years. A line cannot be fit through less.
var ErrTooShort = errors.New("forecast needs at least two distinct years")

// DefaultPeriods is the number of future years forecast when the caller
// does not choose.
const DefaultPeriods = 5

// Point is one (year, price) observation or prediction.
type Point struct {
	Year  int     `json:"rok"`
	Price float64 `json:"cena"`
}

// Linear fits a least-squares line through the series and extrapolates
// periods future years. Predictions are clamped at zero: a negative heat
// price is outside the model's domain.
func Linear(series []Point, periods int) ([]Point, error) {
	if periods <= 0 {
		periods = DefaultPeriods
	}

	years := map[int]bool{}
	for _, p := range series {
		years[p.Year] = true
	}
	if len(years) < 2 {
		return nil, ErrTooShort
	}

	var sumX, sumY, sumXY, sumXX float64
	n := float64(len(series))
	for _, p := range series {
		x := float64(p.Year)
		sumX += x
		sumY += p.Price
		sumXY += x * p.Price
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	lastYear := series[0].Year
	for _, p := range series {
		if p.Year > lastYear {
			lastYear = p.Year
		}
	}

	out := make([]Point, 0, periods)
	for i := 1; i <= periods; i++ {
		year := lastYear + i
		price := slope*float64(year) + intercept
		if price < 0 {
			price = 0
		}
		out = append(out, Point{Year: year, Price: price})
	}
	return out, nil
}
