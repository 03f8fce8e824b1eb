// Package db persists extracted heat-price rows in a sqlite star schema:
// Kraje, Lokality, Roky and TypyDodavek dimensions around the CenyTepla
// fact table.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jstrnad/ceny-tepla/models"
)

type DB struct {
	*sql.DB
	path string
}

// Open opens or creates the sqlite database at path and makes sure the
// schema and dimension seeds exist.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}

	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// ensureSchemaExists initializes the schema on first open.
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='Kraje'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// InitSchema creates the tables and seeds the static dimensions: all 14
// region codes and the ten delivery types. Seeding is idempotent.
func (db *DB) InitSchema() error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	for code, name := range models.RegionNames {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO Kraje (KodKraje, NazevKraje) VALUES (?, ?)",
			code, name,
		); err != nil {
			return fmt.Errorf("failed to seed region %s: %w", code, err)
		}
	}

	for _, dt := range models.DeliveryTypes {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO TypyDodavek (NazevTypuDodavky, Popis) VALUES (?, ?)",
			dt.Name, dt.Description,
		); err != nil {
			return fmt.Errorf("failed to seed delivery type: %w", err)
		}
	}

	return nil
}
