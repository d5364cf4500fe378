package repository

import (
	"database/sql"
	"fmt"

	"github.com/urbansim/signals-backend-go/internal/database"
	"github.com/urbansim/signals-backend-go/internal/models"
)

// PointRepository handles database operations for the extracted-point
// snapshot. The snapshot lets the service rebuild its signal roster on
// restart without re-parsing the OSM export.
type PointRepository struct {
	db *sql.DB
}

// NewPointRepository creates a new point repository
func NewPointRepository(db *sql.DB) *PointRepository {
	return &PointRepository{db: db}
}

// ReplaceAll replaces the stored snapshot with the given points in one
// transaction.
func (r *PointRepository) ReplaceAll(points []models.GeocodedPoint) error {
	return database.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM signal_points"); err != nil {
			return fmt.Errorf("failed to clear signal points: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO signal_points
			(source_id, latitude, longitude, feature_type) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range points {
			if _, err := stmt.Exec(p.SourceID, p.Latitude, p.Longitude, p.FeatureType); err != nil {
				return fmt.Errorf("failed to insert signal point %s: %w", p.SourceID, err)
			}
		}
		return nil
	})
}

// GetAll retrieves the stored snapshot in import order.
func (r *PointRepository) GetAll() ([]models.GeocodedPoint, error) {
	rows, err := r.db.Query(`SELECT source_id, latitude, longitude, feature_type
		FROM signal_points ORDER BY source_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query signal points: %w", err)
	}
	defer rows.Close()

	var points []models.GeocodedPoint
	for rows.Next() {
		var p models.GeocodedPoint
		if err := rows.Scan(&p.SourceID, &p.Latitude, &p.Longitude, &p.FeatureType); err != nil {
			return nil, fmt.Errorf("failed to scan signal point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read signal points: %w", err)
	}

	return points, nil
}

// Count returns the number of stored points.
func (r *PointRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM signal_points").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count signal points: %w", err)
	}
	return count, nil
}
