package scheduler

import (
	"context"
	"time"

	"parkspot/internal/domain"

	"github.com/wb-go/wbf/logger"
)

type spotReleaser interface {
	ReleaseLapsed(ctx context.Context) ([]domain.SpotRef, error)
}

// Scheduler periodically frees reserved spots whose reservations have lapsed.
type Scheduler struct {
	reservationService spotReleaser
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService spotReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	released, err := s.reservationService.ReleaseLapsed(ctx)
	if err != nil {
		s.logger.Error("failed to release lapsed spots",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, spot := range released {
		s.logger.Info("spot released",
			logger.String("complex", spot.Complex),
			logger.String("spot_id", spot.SpotID),
		)
	}
}
