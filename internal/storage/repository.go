package storage

import (
	"context"
	"database/sql"
	"time"

	pq "github.com/lib/pq"

	"github.com/ridepulse/ridepulse/internal/domain/models"
)

// TripsRepository defines the contract for trip persistence.
//
// The analytics engine itself never touches the database; this repository
// is the history store that hands it immutable snapshots.
type TripsRepository interface {
	InsertTripsBatch(trips []models.Trip) error
	ListTrips(ctx context.Context) ([]models.Trip, error)
	HasIngestionForDate(date time.Time) (bool, error)
	UpsertIngestionLog(date time.Time, filename string, rowCount int) error
	DeleteTripsByDate(date time.Time) error
}

type tripsRepository struct {
	db *sql.DB
}

func NewTripsRepository(db *sql.DB) TripsRepository {
	return &tripsRepository{db: db}
}

// InsertTripsBatch inserts multiple trips into the DB in a single transaction
// using the COPY protocol for bulk speed.
func (r *tripsRepository) InsertTripsBatch(trips []models.Trip) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"trips",
		"id",
		"recorded_at",
		"total_price",
		"net_profit",
		"total_fuel_cost",
		"total_time_min",
		"total_distance_km",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, t := range trips {
		if _, err := stmt.Exec(
			t.ID,
			t.RecordedAt,
			t.TotalPrice,
			t.NetProfit,
			t.TotalFuelCost,
			t.TotalTimeMin,
			t.TotalDistanceKm,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListTrips returns the full trip history ordered by recorded_at ascending.
// The analytics layer does its own windowing and reordering; the ORDER BY
// just makes the snapshot stable across calls.
func (r *tripsRepository) ListTrips(ctx context.Context) ([]models.Trip, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recorded_at, total_price, net_profit, total_fuel_cost, total_time_min, total_distance_km
		FROM trips
		ORDER BY recorded_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(
			&t.ID,
			&t.RecordedAt,
			&t.TotalPrice,
			&t.NetProfit,
			&t.TotalFuelCost,
			&t.TotalTimeMin,
			&t.TotalDistanceKm,
		); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}

// HasIngestionForDate checks if an ingestion was already recorded for a given export day.
func (r *tripsRepository) HasIngestionForDate(date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a given day.
func (r *tripsRepository) UpsertIngestionLog(date time.Time, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (file_date, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (file_date)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, date, filename, rowCount)
	return err
}

// DeleteTripsByDate removes all trips recorded on a given calendar day.
func (r *tripsRepository) DeleteTripsByDate(date time.Time) error {
	_, err := r.db.Exec(`DELETE FROM trips WHERE recorded_at >= $1 AND recorded_at < $1 + INTERVAL '1 day'`, date)
	return err
}
