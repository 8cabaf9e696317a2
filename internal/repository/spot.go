package repository

import (
	"context"
	"fmt"
	"time"

	"parkspot/internal/domain"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SpotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpotRepo(db *dbpg.DB) *SpotRepository {
	return &SpotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SpotRepository) ListByComplex(ctx context.Context, complex string) ([]domain.ParkingSpot, error) {
	query := `SELECT id, parking_complex, spot_id, status, updated_at
			  FROM parking_spots
			  WHERE parking_complex = $1
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, complex)
	if err != nil {
		return nil, fmt.Errorf("list spots by complex: %w", err)
	}
	defer rows.Close()

	var res []domain.ParkingSpot
	for rows.Next() {
		var s domain.ParkingSpot
		if err = rows.Scan(&s.ID, &s.Complex, &s.SpotID, &s.Status, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SpotRepository) ListByStatus(ctx context.Context, status domain.SpotStatus) ([]domain.ParkingSpot, error) {
	query := `SELECT id, parking_complex, spot_id, status, updated_at
			  FROM parking_spots
			  WHERE status = $1
			  ORDER BY parking_complex, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list spots by status: %w", err)
	}
	defer rows.Close()

	var res []domain.ParkingSpot
	for rows.Next() {
		var s domain.ParkingSpot
		if err = rows.Scan(&s.ID, &s.Complex, &s.SpotID, &s.Status, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// Release flips a reserved spot back to available. It reports whether a row
// was actually flipped; a spot that was occupied or already available is left
// untouched.
func (r *SpotRepository) Release(ctx context.Context, complex, spotID string) (bool, error) {
	query := `UPDATE parking_spots
			  SET status = $3, updated_at = now()
			  WHERE parking_complex = $1 AND spot_id = $2 AND status = $4`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		complex, spotID, domain.SpotStatusAvailable, domain.SpotStatusReserved,
	)
	if err != nil {
		return false, fmt.Errorf("release spot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("release rows affected: %w", err)
	}

	return rows > 0, nil
}
