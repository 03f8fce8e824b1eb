package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jstrnad/ceny-tepla/models"
)

// ImportStats summarises one CSV import.
type ImportStats struct {
	Inserted int
	Skipped  int // rows whose locality, year or delivery type did not resolve
}

// ImportRows loads flattened rows into the star schema inside one
// transaction. Dimension rows are insert-or-ignore; fact rows are inserted
// unconditionally, but only when all three foreign keys resolve. Rows
// referencing an unknown delivery type (or a locality/year that failed to
// insert) are counted as skipped, not errors.
func (db *DB) ImportRows(rows []models.Row) (*ImportStats, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range rows {
		if _, err := tx.Exec("INSERT OR IGNORE INTO Roky (Rok) VALUES (?)", r.Year); err != nil {
			return nil, fmt.Errorf("failed to insert year %d: %w", r.Year, err)
		}
		// OR IGNORE does not cover foreign keys, so a locality with a code
		// outside the seeded 14 must not reach the insert; its fact rows
		// fall through to the skipped count below.
		if !models.ValidRegionCode(r.RegionCode) {
			continue
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO Lokality (NazevLokality, KodKraje) VALUES (?, ?)",
			r.Locality, r.RegionCode,
		); err != nil {
			return nil, fmt.Errorf("failed to insert locality %q: %w", r.Locality, err)
		}
	}

	stats := &ImportStats{}
	for _, r := range rows {
		localityID, err := lookupID(tx,
			"SELECT LokalitaID FROM Lokality WHERE NazevLokality = ? AND KodKraje = ?",
			r.Locality, r.RegionCode)
		if err != nil {
			return nil, err
		}
		yearID, err := lookupID(tx, "SELECT RokID FROM Roky WHERE Rok = ?", r.Year)
		if err != nil {
			return nil, err
		}
		typeID, err := lookupID(tx,
			"SELECT TypDodavkyID FROM TypyDodavek WHERE NazevTypuDodavky = ?",
			r.DeliveryType)
		if err != nil {
			return nil, err
		}

		if localityID == 0 || yearID == 0 || typeID == 0 {
			stats.Skipped++
			continue
		}

		if _, err := tx.Exec(`
			INSERT INTO CenyTepla (
				LokalitaID, RokID, TypDodavkyID, InstalovanyVykon,
				PocetOdbernychMist, PocetOdberatelu, Cena, Mnozstvi,
				UhliProcento, BiomasaProcento, OdpadProcento,
				ZemniPlynProcento, JinaPalivaProcento
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, localityID, yearID, typeID, r.Capacity,
			r.MeterPoints, r.Subscribers, r.Price, r.Quantity,
			r.CoalPct, r.BiomassPct, r.WastePct,
			r.GasPct, r.OtherPct,
		); err != nil {
			return nil, fmt.Errorf("failed to insert fact row: %w", err)
		}
		stats.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return stats, nil
}

// lookupID resolves a dimension surrogate key, returning 0 when the row
// does not exist.
func lookupID(tx *sql.Tx, query string, args ...any) (int64, error) {
	var id int64
	err := tx.QueryRow(query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve dimension key: %w", err)
	}
	return id, nil
}
