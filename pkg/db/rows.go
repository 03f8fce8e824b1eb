package db

import (
	"fmt"

	"github.com/jstrnad/ceny-tepla/models"
)

// FlatRows reads the whole fact table joined back to its dimensions, in the
// same flat shape the CSVs carry. The dashboard runs its filtering and
// grouping in memory over this slice, so the store and the CSV fallback are
// interchangeable.
func (db *DB) FlatRows() ([]models.Row, error) {
	rows, err := db.Query(`
		SELECT
			r.Rok, l.NazevLokality, l.KodKraje,
			c.UhliProcento, c.BiomasaProcento, c.OdpadProcento,
			c.ZemniPlynProcento, c.JinaPalivaProcento,
			c.InstalovanyVykon, c.PocetOdbernychMist, c.PocetOdberatelu,
			t.NazevTypuDodavky, c.Cena, c.Mnozstvi
		FROM CenyTepla c
		JOIN Lokality l ON c.LokalitaID = l.LokalitaID
		JOIN Roky r ON c.RokID = r.RokID
		JOIN TypyDodavek t ON c.TypDodavkyID = t.TypDodavkyID
		ORDER BY r.Rok, l.NazevLokality`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fact rows: %w", err)
	}
	defer rows.Close()

	var out []models.Row
	for rows.Next() {
		var row models.Row
		if err := rows.Scan(
			&row.Year, &row.Locality, &row.RegionCode,
			&row.CoalPct, &row.BiomassPct, &row.WastePct,
			&row.GasPct, &row.OtherPct,
			&row.Capacity, &row.MeterPoints, &row.Subscribers,
			&row.DeliveryType, &row.Price, &row.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fact row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fact rows: %w", err)
	}
	return out, nil
}
