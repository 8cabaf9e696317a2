package service

import (
	"context"
	"fmt"

	"parkspot/internal/domain"
	"parkspot/internal/metrics"
	"parkspot/internal/service/ports"
)

type SpotService struct {
	repo  ports.SpotRepo
	cache ports.SpotCache
}

func NewSpotService(repo ports.SpotRepo, cache ports.SpotCache) *SpotService {
	return &SpotService{
		repo:  repo,
		cache: cache,
	}
}

func (s *SpotService) Complexes() []string {
	return domain.ParkingComplexes
}

// ListByComplex returns the spot grid for a complex, reading through the
// process-local cache. The cache entry is dropped whenever a reservation
// write touches the complex, so the next read reflects the change.
func (s *SpotService) ListByComplex(ctx context.Context, complex string) ([]domain.ParkingSpot, error) {
	if !domain.IsKnownComplex(complex) {
		return nil, fmt.Errorf("%w: unknown parking complex %q", domain.ErrValidation, complex)
	}

	if spots, ok := s.cache.Get(complex); ok {
		metrics.IncCacheHit()
		return spots, nil
	}
	metrics.IncCacheMiss()

	spots, err := s.repo.ListByComplex(ctx, complex)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}

	s.cache.Set(complex, spots)

	return spots, nil
}
