package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parkspot/internal/domain"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the reservation and flips its spot to reserved in a single
// transaction. The spot update is conditional on the spot still being
// available, so two concurrent bookings of the same spot cannot both commit.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `INSERT INTO reservations
			(id, user_id, parking_complex, spot_id, vehicle_plate, date, time, duration, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		res.ID, res.UserID, res.Complex, res.SpotID, res.VehiclePlate,
		res.Date, res.Time, res.Duration, res.Status, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	spotQuery := `UPDATE parking_spots
				  SET status = $3, updated_at = now()
				  WHERE parking_complex = $1 AND spot_id = $2 AND status = $4`
	spotRes, err := tx.ExecContext(
		ctx, spotQuery,
		res.Complex, res.SpotID, domain.SpotStatusReserved, domain.SpotStatusAvailable,
	)
	if err != nil {
		return fmt.Errorf("reserve spot: %w", err)
	}

	rows, err := spotRes.RowsAffected()
	if err != nil {
		return fmt.Errorf("spot rows affected: %w", err)
	}
	if rows == 0 {
		// Either the spot is gone or someone got there first.
		var one int
		checkQuery := `SELECT 1 FROM parking_spots WHERE parking_complex = $1 AND spot_id = $2`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, res.Complex, res.SpotID).Scan(&one); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrSpotNotFound
			}
			return fmt.Errorf("check spot: %w", scanErr)
		}
		return domain.ErrSpotNotAvailable
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, user_id, parking_complex, spot_id, vehicle_plate, date, time, duration, status, created_at
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(
		&res.ID, &res.UserID, &res.Complex, &res.SpotID, &res.VehiclePlate,
		&res.Date, &res.Time, &res.Duration, &res.Status, &res.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT id, user_id, parking_complex, spot_id, vehicle_plate, date, time, duration, status, created_at
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) ListBySpot(ctx context.Context, complex, spotID string) ([]*domain.Reservation, error) {
	query := `SELECT id, user_id, parking_complex, spot_id, vehicle_plate, date, time, duration, status, created_at
			  FROM reservations
			  WHERE parking_complex = $1 AND spot_id = $2
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, complex, spotID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by spot: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) UpdateDuration(ctx context.Context, id, duration string) error {
	query := `UPDATE reservations SET duration = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, duration)
	if err != nil {
		return fmt.Errorf("update duration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("duration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

// Cancel deletes the reservation and frees its spot in one transaction. The
// spot release is conditional on the reserved status: a spot flagged occupied
// by other means stays as is.
func (r *ReservationRepository) Cancel(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var complex, spotID string
	deleteQuery := `DELETE FROM reservations WHERE id = $1 RETURNING parking_complex, spot_id`
	if err = tx.QueryRowContext(ctx, deleteQuery, id).Scan(&complex, &spotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("delete reservation: %w", err)
	}

	releaseQuery := `UPDATE parking_spots
					 SET status = $3, updated_at = now()
					 WHERE parking_complex = $1 AND spot_id = $2 AND status = $4`
	if _, err = tx.ExecContext(
		ctx, releaseQuery,
		complex, spotID, domain.SpotStatusAvailable, domain.SpotStatusReserved,
	); err != nil {
		return fmt.Errorf("free spot: %w", err)
	}

	return tx.Commit()
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		var rsv domain.Reservation
		if err := rows.Scan(
			&rsv.ID, &rsv.UserID, &rsv.Complex, &rsv.SpotID, &rsv.VehiclePlate,
			&rsv.Date, &rsv.Time, &rsv.Duration, &rsv.Status, &rsv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &rsv)
	}

	return res, rows.Err()
}
