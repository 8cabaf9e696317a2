package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parkspot",
			Name:      "reservations_created_total",
			Help:      "Count of reservations created by parking complex.",
		},
		[]string{"complex"},
	)

	reservationsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "parkspot",
			Name:      "reservations_cancelled_total",
			Help:      "Count of reservations cancelled by users.",
		},
	)

	spotsReleased = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "parkspot",
			Name:      "spots_released_total",
			Help:      "Count of reserved spots released after their reservations lapsed.",
		},
	)

	spotCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "parkspot",
			Name:      "spot_cache_lookups_total",
			Help:      "Spot list cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			reservationsCreated, reservationsCancelled,
			spotsReleased, spotCacheLookups,
		)
	})
}

func IncReservationCreated(complex string) {
	reservationsCreated.WithLabelValues(complex).Inc()
}

func IncReservationCancelled() {
	reservationsCancelled.Inc()
}

func IncSpotReleased() {
	spotsReleased.Inc()
}

func IncCacheHit() {
	spotCacheLookups.WithLabelValues("hit").Inc()
}

func IncCacheMiss() {
	spotCacheLookups.WithLabelValues("miss").Inc()
}
