// Package readings keeps an append-only history of fetched conditions.
// It is never read back to answer a conditions request.
package readings

import (
	"context"
	"fmt"
	"time"

	"github.com/ngmaloney/surf-terminal/internal/database"
	"github.com/ngmaloney/surf-terminal/internal/models"
)

const (
	// DefaultLimit is used when Recent is asked for zero or fewer rows
	DefaultLimit = 20
	// MaxLimit caps the rows returned by Recent
	MaxLimit = 200
)

// Store is the history surface used by the UI and the API
type Store interface {
	Save(ctx context.Context, r *models.Reading) error
	Recent(ctx context.Context, spotID string, limit int) ([]models.Reading, error)
}

// Repository handles persistence of readings in sqlite
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// Init ensures the schema exists
func (r *Repository) Init() error {
	return database.EnsureSchema(r.dbPath)
}

// Save inserts a reading and sets its ID
func (r *Repository) Save(ctx context.Context, reading *models.Reading) error {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return err
	}

	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if reading.FetchedAt.IsZero() {
		reading.FetchedAt = time.Now()
	}
	reading.FetchedAt = reading.FetchedAt.UTC()

	res, err := db.ExecContext(ctx, `
		INSERT INTO readings (spot_id, fetched_at, wave_height, wave_direction, wind_speed, air_temp, condition_code, band)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		reading.SpotID,
		reading.FetchedAt,
		reading.WaveHeight,
		reading.WaveDirection,
		reading.WindSpeed,
		reading.AirTemp,
		reading.ConditionCode,
		reading.Band,
	)
	if err != nil {
		return fmt.Errorf("saving reading: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	reading.ID = id

	return nil
}

// Recent returns up to limit readings for a spot, newest first
func (r *Repository) Recent(ctx context.Context, spotID string, limit int) ([]models.Reading, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := database.Open(r.dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, spot_id, fetched_at, wave_height, wave_direction, wind_speed, air_temp, condition_code, band
		FROM readings
		WHERE spot_id = ?
		ORDER BY fetched_at DESC, id DESC
		LIMIT ?
	`, spotID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	readings := []models.Reading{}
	for rows.Next() {
		var rd models.Reading
		if err := rows.Scan(&rd.ID, &rd.SpotID, &rd.FetchedAt, &rd.WaveHeight, &rd.WaveDirection,
			&rd.WindSpeed, &rd.AirTemp, &rd.ConditionCode, &rd.Band); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		readings = append(readings, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating readings: %w", err)
	}

	return readings, nil
}
