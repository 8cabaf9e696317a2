package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parkspot/internal/domain"
	"parkspot/internal/metrics"
	"parkspot/internal/service/ports"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	spotRepo        ports.SpotRepo
	userRepo        ports.UserRepo
	cache           ports.SpotCache
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	spotRepo ports.SpotRepo,
	userRepo ports.UserRepo,
	cache ports.SpotCache,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		spotRepo:        spotRepo,
		userRepo:        userRepo,
		cache:           cache,
		notifier:        notifier,
		logger:          logger,
	}
}

// Create books a spot for today. The reservation insert and the spot flip
// happen in one repository transaction; if the insert fails no spot write is
// attempted. On success the complex's cached spot list is invalidated.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := validateReservationInput(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now()
	res := &domain.Reservation{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		Complex:      input.Complex,
		SpotID:       input.SpotID,
		VehiclePlate: strings.TrimSpace(input.VehiclePlate),
		Date:         now.Format(domain.DateLayout),
		Time:         input.Time,
		Duration:     input.Duration,
		Status:       domain.BucketUpcoming,
		CreatedAt:    now.UTC(),
	}

	if err = s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.cache.Invalidate(res.Complex)
	metrics.IncReservationCreated(res.Complex)

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("complex", res.Complex),
		logger.String("spot_id", res.SpotID),
		logger.String("user_id", res.UserID),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), user, res)

	return res, nil
}

// ListBuckets fetches the user's reservations and partitions them into
// upcoming, live and past by the classifier; the stored status is ignored.
func (s *ReservationService) ListBuckets(ctx context.Context, userID string) (*domain.ReservationBuckets, error) {
	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	now := time.Now()
	buckets := &domain.ReservationBuckets{
		Upcoming: []*domain.Reservation{},
		Live:     []*domain.Reservation{},
		Past:     []*domain.Reservation{},
	}
	for _, r := range reservations {
		bucket, err := r.BucketAt(now)
		if err != nil {
			return nil, fmt.Errorf("classify reservation %s: %w", r.ID, err)
		}
		r.Status = bucket

		switch bucket {
		case domain.BucketUpcoming:
			buckets.Upcoming = append(buckets.Upcoming, r)
		case domain.BucketLive:
			buckets.Live = append(buckets.Live, r)
		default:
			buckets.Past = append(buckets.Past, r)
		}
	}

	return buckets, nil
}

// Cancel removes a reservation owned by userID and frees its spot.
func (s *ReservationService) Cancel(ctx context.Context, id, userID string) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if res.UserID != userID {
		return domain.ErrForbidden
	}

	if err = s.reservationRepo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.cache.Invalidate(res.Complex)
	metrics.IncReservationCancelled()

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("complex", res.Complex),
		logger.String("spot_id", res.SpotID),
	)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), user, res)

	return nil
}

// Extend replaces the duration of a non-past reservation owned by userID.
func (s *ReservationService) Extend(ctx context.Context, id, userID, duration string) (*domain.Reservation, error) {
	if !domain.IsValidDuration(duration) {
		return nil, fmt.Errorf("%w: unknown duration %q", domain.ErrValidation, duration)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if res.UserID != userID {
		return nil, domain.ErrForbidden
	}

	bucket, err := res.BucketAt(time.Now())
	if err != nil {
		return nil, fmt.Errorf("classify reservation: %w", err)
	}
	if bucket == domain.BucketPast {
		return nil, domain.ErrReservationPast
	}

	if err = s.reservationRepo.UpdateDuration(ctx, id, duration); err != nil {
		return nil, fmt.Errorf("update duration: %w", err)
	}

	s.logger.Info("reservation extended",
		logger.String("reservation_id", res.ID),
		logger.String("duration", duration),
	)

	res.Duration = duration
	res.Status = bucket

	return res, nil
}

// ReleaseLapsed frees reserved spots whose reservations are all past. It is
// driven by the scheduler and keeps the spot-status invariant: a spot stays
// reserved only while a non-past reservation references it.
func (s *ReservationService) ReleaseLapsed(ctx context.Context) ([]domain.SpotRef, error) {
	reserved, err := s.spotRepo.ListByStatus(ctx, domain.SpotStatusReserved)
	if err != nil {
		return nil, fmt.Errorf("list reserved spots: %w", err)
	}

	now := time.Now()
	var released []domain.SpotRef
	for _, spot := range reserved {
		reservations, err := s.reservationRepo.ListBySpot(ctx, spot.Complex, spot.SpotID)
		if err != nil {
			return released, fmt.Errorf("list reservations for spot %s/%s: %w", spot.Complex, spot.SpotID, err)
		}

		if hasActiveReservation(reservations, now) {
			continue
		}

		ok, err := s.spotRepo.Release(ctx, spot.Complex, spot.SpotID)
		if err != nil {
			return released, fmt.Errorf("release spot %s/%s: %w", spot.Complex, spot.SpotID, err)
		}
		if !ok {
			continue
		}

		s.cache.Invalidate(spot.Complex)
		metrics.IncSpotReleased()
		released = append(released, domain.SpotRef{Complex: spot.Complex, SpotID: spot.SpotID})
	}

	return released, nil
}

func hasActiveReservation(reservations []*domain.Reservation, now time.Time) bool {
	for _, r := range reservations {
		bucket, err := r.BucketAt(now)
		if err != nil {
			// Malformed labels cannot come from the validated write path.
			// Keep the spot reserved rather than free it on bad data.
			return true
		}
		if bucket != domain.BucketPast {
			return true
		}
	}
	return false
}

func validateReservationInput(input domain.CreateReservationInput) error {
	switch {
	case input.UserID == "":
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	case !domain.IsKnownComplex(input.Complex):
		return fmt.Errorf("%w: unknown parking complex %q", domain.ErrValidation, input.Complex)
	case input.SpotID == "" || strings.TrimSpace(input.SpotID) == "":
		return fmt.Errorf("%w: spot id is required", domain.ErrValidation)
	case strings.TrimSpace(input.VehiclePlate) == "":
		return fmt.Errorf("%w: vehicle plate is required", domain.ErrValidation)
	case !domain.IsValidTimeSlot(input.Time):
		return fmt.Errorf("%w: unknown time slot %q", domain.ErrValidation, input.Time)
	case !domain.IsValidDuration(input.Duration):
		return fmt.Errorf("%w: unknown duration %q", domain.ErrValidation, input.Duration)
	}
	return nil
}
