package ports

import (
	"context"

	"parkspot/internal/domain"
)

type ReservationRepo interface {
	// Create inserts the reservation and flips its spot to reserved in one
	// transaction; the spot write only succeeds while the spot is available.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	ListBySpot(ctx context.Context, complex, spotID string) ([]*domain.Reservation, error)
	UpdateDuration(ctx context.Context, id, duration string) error
	// Cancel deletes the reservation and frees its spot in one transaction.
	Cancel(ctx context.Context, id string) error
}
