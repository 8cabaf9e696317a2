package ports

import "parkspot/internal/domain"

// SpotCache is a process-local read-through cache of spot lists keyed by
// complex. It is never a source of truth: any successful write for a complex
// invalidates its entry.
type SpotCache interface {
	Get(complex string) ([]domain.ParkingSpot, bool)
	Set(complex string, spots []domain.ParkingSpot)
	Invalidate(complex string)
}
