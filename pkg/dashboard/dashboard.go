// Package dashboard serves the filtering/aggregation API the visualization
// layer consumes. It works over a flat row set loaded once at startup,
// from the sqlite store when available and the consolidated CSV otherwise.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jstrnad/ceny-tepla/models"
	"github.com/jstrnad/ceny-tepla/pkg/dataset"
	"github.com/jstrnad/ceny-tepla/pkg/forecast"
	"github.com/jstrnad/ceny-tepla/pkg/geo"
)

// Server holds the immutable data the handlers read.
type Server struct {
	rows      []models.Row
	locations *geo.Locations
	logger    *slog.Logger
}

// NewServer builds a dashboard API over the given rows and location
// mapping. Rows are not mutated after construction.
func NewServer(rows []models.Row, locations *geo.Locations, logger *slog.Logger) *Server {
	return &Server{rows: rows, locations: locations, logger: logger}
}

// Router wires the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/zaznamy", s.handleRows)
		r.Get("/filtry", s.handleFilters)
		r.Get("/kraje", s.handleRegions)
		r.Get("/vyvoj", s.handleEvolution)
		r.Get("/paliva", s.handleFuels)
		r.Get("/mapa", s.handleMap)
		r.Get("/predikce", s.handleForecast)
	})

	return r
}

// filterFromQuery builds a dataset filter from the shared query params:
// rok, kraj (code or full name), typ, lokalita, cena_min, cena_max.
func filterFromQuery(r *http.Request) dataset.Filter {
	q := r.URL.Query()
	var f dataset.Filter

	if y, err := strconv.Atoi(q.Get("rok")); err == nil {
		f.Year = y
	}
	if kraj := q.Get("kraj"); kraj != "" {
		if models.ValidRegionCode(kraj) {
			f.RegionCode = kraj
		} else if code := models.RegionCodeByName(kraj); code != "" {
			f.RegionCode = code
		} else {
			f.RegionCode = kraj // matches nothing, which is the right answer
		}
	}
	f.DeliveryType = q.Get("typ")
	f.Locality = q.Get("lokalita")
	if v, err := strconv.ParseFloat(q.Get("cena_min"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("cena_max"), 64); err == nil {
		f.MaxPrice = &v
	}
	return f
}

func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	rows := dataset.Apply(s.rows, filterFromQuery(r))
	if rows == nil {
		rows = []models.Row{}
	}
	s.writeJSON(w, rows)
}

// handleFilters reports the selectable filter values for the current data.
func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	type regionOption struct {
		Code string `json:"kod"`
		Name string `json:"nazev"`
	}

	regions := []regionOption{}
	seen := map[string]bool{}
	for _, row := range s.rows {
		if seen[row.RegionCode] || !models.ValidRegionCode(row.RegionCode) {
			continue
		}
		seen[row.RegionCode] = true
	}
	for code, name := range models.RegionNames {
		if seen[code] {
			regions = append(regions, regionOption{Code: code, Name: name})
		}
	}

	types := make([]string, 0, len(models.DeliveryTypes))
	for _, dt := range models.DeliveryTypes {
		types = append(types, dt.Name)
	}

	s.writeJSON(w, map[string]any{
		"roky":     dataset.Years(s.rows),
		"kraje":    regions,
		"typy":     types,
		"lokality": dataset.Localities(s.rows),
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	rows := dataset.Apply(s.rows, filterFromQuery(r))
	s.writeJSON(w, dataset.MeanPriceByRegion(rows))
}

func (s *Server) handleEvolution(w http.ResponseWriter, r *http.Request) {
	rows := dataset.Apply(s.rows, filterFromQuery(r))
	s.writeJSON(w, dataset.MeanPriceByYear(rows))
}

func (s *Server) handleFuels(w http.ResponseWriter, r *http.Request) {
	rows := dataset.Apply(s.rows, filterFromQuery(r))
	shares := dataset.MeanFuelShares(rows)
	s.writeJSON(w, map[string]float64{
		"uhli":       shares.Coal,
		"biomasa":    shares.Biomass,
		"odpad":      shares.Waste,
		"zemni_plyn": shares.Gas,
		"jina":       shares.Other,
	})
}

// handleMap joins locality mean prices with the coordinate mapping.
// Localities without coordinates are omitted.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	type mapPoint struct {
		Locality   string  `json:"lokalita"`
		RegionCode string  `json:"kod_kraje"`
		MeanPrice  float64 `json:"prumerna_cena"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
	}

	rows := dataset.Apply(s.rows, filterFromQuery(r))
	points := []mapPoint{}
	for _, lp := range dataset.MeanPriceByLocality(rows) {
		p, ok := s.locations.Lookup(lp.Locality, lp.RegionCode)
		if !ok {
			continue
		}
		points = append(points, mapPoint{
			Locality:   lp.Locality,
			RegionCode: lp.RegionCode,
			MeanPrice:  lp.MeanPrice,
			Lat:        p.Lat,
			Lon:        p.Lon,
		})
	}
	s.writeJSON(w, points)
}

// handleForecast runs the forecaster over the filtered yearly mean series.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	periods := forecast.DefaultPeriods
	if p, err := strconv.Atoi(r.URL.Query().Get("obdobi")); err == nil && p > 0 {
		periods = p
	}

	rows := dataset.Apply(s.rows, filterFromQuery(r))
	yearly := dataset.MeanPriceByYear(rows)
	series := make([]forecast.Point, 0, len(yearly))
	for _, yp := range yearly {
		series = append(series, forecast.Point{Year: yp.Year, Price: yp.MeanPrice})
	}

	predicted, err := forecast.Linear(series, periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.writeJSON(w, map[string]any{
		"historie": series,
		"predikce": predicted,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
