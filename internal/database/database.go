package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the default path of the readings database
func DBPath() string {
	return filepath.Join("data", "surfcheck.db")
}

// Open opens the sqlite database at dbPath, creating its directory if needed
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the readings table if it does not exist.
// Safe to call on every start; existing rows are kept.
func EnsureSchema(dbPath string) error {
	db, err := Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS readings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			spot_id TEXT NOT NULL,
			fetched_at DATETIME NOT NULL,
			wave_height REAL NOT NULL,
			wave_direction REAL NOT NULL,
			wind_speed INTEGER NOT NULL,
			air_temp INTEGER NOT NULL,
			condition_code INTEGER NOT NULL,
			band TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_readings_spot_time ON readings(spot_id, fetched_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating readings table: %w", err)
	}

	return nil
}
