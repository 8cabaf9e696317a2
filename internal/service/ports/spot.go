package ports

import (
	"context"

	"parkspot/internal/domain"
)

type SpotRepo interface {
	ListByComplex(ctx context.Context, complex string) ([]domain.ParkingSpot, error)
	ListByStatus(ctx context.Context, status domain.SpotStatus) ([]domain.ParkingSpot, error)
	Release(ctx context.Context, complex, spotID string) (bool, error)
}
