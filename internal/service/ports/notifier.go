package ports

import (
	"context"

	"parkspot/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, r *domain.Reservation)
}
