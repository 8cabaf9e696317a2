package cache

import (
	"sync"

	"parkspot/internal/domain"
)

// SpotCache is a process-local read-through cache of spot lists keyed by
// complex name. Entries never expire on their own; writers invalidate the
// complex they touched.
type SpotCache struct {
	mu    sync.RWMutex
	spots map[string][]domain.ParkingSpot
}

func New() *SpotCache {
	return &SpotCache{spots: make(map[string][]domain.ParkingSpot)}
}

func (c *SpotCache) Get(complex string) ([]domain.ParkingSpot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	spots, ok := c.spots[complex]
	if !ok {
		return nil, false
	}

	// Callers get their own copy so a later Set cannot race their reads.
	out := make([]domain.ParkingSpot, len(spots))
	copy(out, spots)
	return out, true
}

func (c *SpotCache) Set(complex string, spots []domain.ParkingSpot) {
	in := make([]domain.ParkingSpot, len(spots))
	copy(in, spots)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spots[complex] = in
}

func (c *SpotCache) Invalidate(complex string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.spots, complex)
}
