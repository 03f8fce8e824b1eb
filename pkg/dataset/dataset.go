// Package dataset filters and aggregates flat heat-price rows in memory.
// The dashboard applies these over rows loaded either from the sqlite store
// or from the consolidated CSV fallback.
package dataset

import (
	"sort"
	"strings"

	"github.com/jstrnad/ceny-tepla/models"
)

// Filter narrows a row set. Zero values mean "no constraint".
type Filter struct {
	Year         int
	RegionCode   string
	DeliveryType string
	Locality     string // case-insensitive substring match
	MinPrice     *float64
	MaxPrice     *float64
}

// Apply returns the rows matching every set constraint.
func Apply(rows []models.Row, f Filter) []models.Row {
	var out []models.Row
	locality := strings.ToLower(f.Locality)
	for _, r := range rows {
		if f.Year != 0 && r.Year != f.Year {
			continue
		}
		if f.RegionCode != "" && r.RegionCode != f.RegionCode {
			continue
		}
		if f.DeliveryType != "" && r.DeliveryType != f.DeliveryType {
			continue
		}
		if locality != "" && !strings.Contains(strings.ToLower(r.Locality), locality) {
			continue
		}
		if f.MinPrice != nil && r.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && r.Price > *f.MaxPrice {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RegionPrice is the mean price over one region's rows.
type RegionPrice struct {
	Code      string  `json:"kod_kraje"`
	Name      string  `json:"nazev_kraje"`
	MeanPrice float64 `json:"prumerna_cena"`
	Rows      int     `json:"pocet_zaznamu"`
}

// MeanPriceByRegion groups rows by region code, ascending by mean price.
// Rows carrying a code outside the 14 valid ones are excluded, matching the
// dashboard-side validity filter of the source system.
func MeanPriceByRegion(rows []models.Row) []RegionPrice {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range rows {
		if !models.ValidRegionCode(r.RegionCode) {
			continue
		}
		sums[r.RegionCode] += r.Price
		counts[r.RegionCode]++
	}

	out := make([]RegionPrice, 0, len(sums))
	for code, sum := range sums {
		out = append(out, RegionPrice{
			Code:      code,
			Name:      models.RegionNames[code],
			MeanPrice: sum / float64(counts[code]),
			Rows:      counts[code],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MeanPrice < out[j].MeanPrice })
	return out
}

// YearPrice is the mean price over one year's rows.
type YearPrice struct {
	Year      int     `json:"rok"`
	MeanPrice float64 `json:"prumerna_cena"`
}

// MeanPriceByYear groups rows by year, ascending by year. This is both the
// price-evolution chart series and the forecasting input.
func MeanPriceByYear(rows []models.Row) []YearPrice {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, r := range rows {
		sums[r.Year] += r.Price
		counts[r.Year]++
	}

	out := make([]YearPrice, 0, len(sums))
	for year, sum := range sums {
		out = append(out, YearPrice{Year: year, MeanPrice: sum / float64(counts[year])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// MeanFuelShares averages the five fuel percentages over distinct
// locality/year records. A locality fans out into up to ten delivery rows
// all carrying the same fuel mix, so averaging raw rows would weight
// localities by delivery count.
func MeanFuelShares(rows []models.Row) models.FuelShares {
	type key struct {
		locality string
		region   string
		year     int
	}
	seen := map[key]bool{}
	var total models.FuelShares
	n := 0
	for _, r := range rows {
		k := key{r.Locality, r.RegionCode, r.Year}
		if seen[k] {
			continue
		}
		seen[k] = true
		total.Coal += r.CoalPct
		total.Biomass += r.BiomassPct
		total.Waste += r.WastePct
		total.Gas += r.GasPct
		total.Other += r.OtherPct
		n++
	}
	if n == 0 {
		return models.FuelShares{}
	}
	return models.FuelShares{
		Coal:    total.Coal / float64(n),
		Biomass: total.Biomass / float64(n),
		Waste:   total.Waste / float64(n),
		Gas:     total.Gas / float64(n),
		Other:   total.Other / float64(n),
	}
}

// LocalityPrice is the mean price for one locality.
type LocalityPrice struct {
	Locality   string  `json:"lokalita"`
	RegionCode string  `json:"kod_kraje"`
	MeanPrice  float64 `json:"prumerna_cena"`
}

// MeanPriceByLocality groups rows by locality and region, sorted by name.
func MeanPriceByLocality(rows []models.Row) []LocalityPrice {
	type key struct {
		locality string
		region   string
	}
	sums := map[key]float64{}
	counts := map[key]int{}
	for _, r := range rows {
		k := key{r.Locality, r.RegionCode}
		sums[k] += r.Price
		counts[k]++
	}

	out := make([]LocalityPrice, 0, len(sums))
	for k, sum := range sums {
		out = append(out, LocalityPrice{
			Locality:   k.locality,
			RegionCode: k.region,
			MeanPrice:  sum / float64(counts[k]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Locality != out[j].Locality {
			return out[i].Locality < out[j].Locality
		}
		return out[i].RegionCode < out[j].RegionCode
	})
	return out
}

// Years returns the distinct years present, ascending.
func Years(rows []models.Row) []int {
	seen := map[int]bool{}
	for _, r := range rows {
		seen[r.Year] = true
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Localities returns the distinct locality names present, sorted.
func Localities(rows []models.Row) []string {
	seen := map[string]bool{}
	for _, r := range rows {
		seen[r.Locality] = true
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
