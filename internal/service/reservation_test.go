package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"parkspot/internal/domain"
	"parkspot/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockSpotRepo, *mocks.MockUserRepo, *mocks.MockSpotCache, *mocks.MockReservationNotifier) {
	t.Helper()
	reservationRepo := mocks.NewMockReservationRepo(t)
	spotRepo := mocks.NewMockSpotRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	spotCache := mocks.NewMockSpotCache(t)
	notifier := mocks.NewMockReservationNotifier(t)

	svc := NewReservationService(reservationRepo, spotRepo, userRepo, spotCache, notifier, newTestLogger(t))
	return svc, reservationRepo, spotRepo, userRepo, spotCache, notifier
}

func validInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		UserID:       "u1",
		Complex:      "Demo Parking 1",
		SpotID:       "A3",
		VehiclePlate: "KA-01-1234",
		Time:         "10:00 AM",
		Duration:     "2 hours",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, reservationRepo, _, userRepo, spotCache, notifier := newReservationService(t)

	user := &domain.User{ID: "u1", Name: "alice"}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	spotCache.EXPECT().Invalidate("Demo Parking 1").Return()
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, user, mock.Anything).Return()

	res, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "Demo Parking 1", res.Complex)
	assert.Equal(t, "A3", res.SpotID)
	assert.Equal(t, time.Now().Format(domain.DateLayout), res.Date)
	assert.Equal(t, domain.BucketUpcoming, res.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateReservationInput)
	}{
		{"missing user", func(in *domain.CreateReservationInput) { in.UserID = "" }},
		{"unknown complex", func(in *domain.CreateReservationInput) { in.Complex = "Nowhere" }},
		{"missing spot", func(in *domain.CreateReservationInput) { in.SpotID = " " }},
		{"missing plate", func(in *domain.CreateReservationInput) { in.VehiclePlate = "" }},
		{"unknown time slot", func(in *domain.CreateReservationInput) { in.Time = "25:00" }},
		{"unknown duration", func(in *domain.CreateReservationInput) { in.Duration = "90 min" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, _, _ := newReservationService(t)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_Create_UserNotFound(t *testing.T) {
	svc, _, _, userRepo, _, _ := newReservationService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReservationService_Create_SpotTaken(t *testing.T) {
	svc, reservationRepo, _, userRepo, _, _ := newReservationService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSpotNotAvailable)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpotNotAvailable)
	// The cache keeps its entry: nothing changed in the database. The mock
	// asserts Invalidate was never called.
}

func TestReservationService_ListBuckets_Partitions(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	now := time.Now()
	today := now.Format(domain.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DateLayout)

	reservations := []*domain.Reservation{
		{ID: "r1", Date: tomorrow, Time: "10:00 AM", Duration: "1 hour"},
		{ID: "r2", Date: today, Time: "12:00 AM", Duration: "24 hours"},
		{ID: "r3", Date: yesterday, Time: "10:00 AM", Duration: "1 hour"},
	}
	reservationRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(reservations, nil)

	buckets, err := svc.ListBuckets(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, buckets.Upcoming, 1)
	require.Len(t, buckets.Live, 1)
	require.Len(t, buckets.Past, 1)
	assert.Equal(t, "r1", buckets.Upcoming[0].ID)
	assert.Equal(t, "r2", buckets.Live[0].ID)
	assert.Equal(t, "r3", buckets.Past[0].ID)

	assert.Equal(t, domain.BucketUpcoming, buckets.Upcoming[0].Status)
	assert.Equal(t, domain.BucketLive, buckets.Live[0].Status)
	assert.Equal(t, domain.BucketPast, buckets.Past[0].Status)
}

func TestReservationService_ListBuckets_Empty(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)

	buckets, err := svc.ListBuckets(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, buckets.Upcoming)
	assert.Empty(t, buckets.Live)
	assert.Empty(t, buckets.Past)
	assert.NotNil(t, buckets.Upcoming)
}

func TestReservationService_ListBuckets_MalformedLabel(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	today := time.Now().Format(domain.DateLayout)
	reservations := []*domain.Reservation{
		{ID: "r1", Date: today, Time: "garbage", Duration: "1 hour"},
	}
	reservationRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(reservations, nil)

	_, err := svc.ListBuckets(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, reservationRepo, _, userRepo, spotCache, notifier := newReservationService(t)

	res := &domain.Reservation{ID: "r1", UserID: "u1", Complex: "Demo Parking 1", SpotID: "A3"}
	user := &domain.User{ID: "u1"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	reservationRepo.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	spotCache.EXPECT().Invalidate("Demo Parking 1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, user, res).Return()

	err := svc.Cancel(context.Background(), "r1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	res := &domain.Reservation{ID: "r1", UserID: "u1", Complex: "Demo Parking 1"}
	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	err := svc.Cancel(context.Background(), "r1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Cancel_NotifyUserLookupFails(t *testing.T) {
	svc, reservationRepo, _, userRepo, spotCache, _ := newReservationService(t)

	res := &domain.Reservation{ID: "r1", UserID: "u1", Complex: "Demo Parking 1"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	reservationRepo.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	spotCache.EXPECT().Invalidate("Demo Parking 1").Return()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, errors.New("db error"))

	// Cancellation already committed; a failed notification lookup is logged,
	// not surfaced.
	err := svc.Cancel(context.Background(), "r1", "u1")

	require.NoError(t, err)
}

func TestReservationService_Extend_Success(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)
	res := &domain.Reservation{ID: "r1", UserID: "u1", Date: tomorrow, Time: "10:00 AM", Duration: "1 hour"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	reservationRepo.EXPECT().UpdateDuration(mock.Anything, "r1", "4 hours").Return(nil)

	updated, err := svc.Extend(context.Background(), "r1", "u1", "4 hours")

	require.NoError(t, err)
	assert.Equal(t, "4 hours", updated.Duration)
	assert.Equal(t, domain.BucketUpcoming, updated.Status)
}

func TestReservationService_Extend_Past(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	res := &domain.Reservation{ID: "r1", UserID: "u1", Date: yesterday, Time: "10:00 AM", Duration: "1 hour"}

	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	_, err := svc.Extend(context.Background(), "r1", "u1", "4 hours")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationPast)
}

func TestReservationService_Extend_UnknownDuration(t *testing.T) {
	svc, _, _, _, _, _ := newReservationService(t)

	_, err := svc.Extend(context.Background(), "r1", "u1", "90 min")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Extend_NotOwner(t *testing.T) {
	svc, reservationRepo, _, _, _, _ := newReservationService(t)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)
	res := &domain.Reservation{ID: "r1", UserID: "u1", Date: tomorrow, Time: "10:00 AM", Duration: "1 hour"}
	reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	_, err := svc.Extend(context.Background(), "r1", "intruder", "4 hours")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReservationService_ReleaseLapsed_FreesSpot(t *testing.T) {
	svc, reservationRepo, spotRepo, _, spotCache, _ := newReservationService(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	reserved := []domain.ParkingSpot{
		{Complex: "Demo Parking 1", SpotID: "A3", Status: domain.SpotStatusReserved},
	}
	lapsed := []*domain.Reservation{
		{ID: "r1", Date: yesterday, Time: "10:00 AM", Duration: "1 hour"},
	}

	spotRepo.EXPECT().ListByStatus(mock.Anything, domain.SpotStatusReserved).Return(reserved, nil)
	reservationRepo.EXPECT().ListBySpot(mock.Anything, "Demo Parking 1", "A3").Return(lapsed, nil)
	spotRepo.EXPECT().Release(mock.Anything, "Demo Parking 1", "A3").Return(true, nil)
	spotCache.EXPECT().Invalidate("Demo Parking 1").Return()

	released, err := svc.ReleaseLapsed(context.Background())

	require.NoError(t, err)
	require.Len(t, released, 1)
	assert.Equal(t, domain.SpotRef{Complex: "Demo Parking 1", SpotID: "A3"}, released[0])
}

func TestReservationService_ReleaseLapsed_KeepsActiveSpot(t *testing.T) {
	svc, reservationRepo, spotRepo, _, _, _ := newReservationService(t)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)
	reserved := []domain.ParkingSpot{
		{Complex: "Demo Parking 1", SpotID: "A3", Status: domain.SpotStatusReserved},
	}
	active := []*domain.Reservation{
		{ID: "r1", Date: tomorrow, Time: "10:00 AM", Duration: "1 hour"},
	}

	spotRepo.EXPECT().ListByStatus(mock.Anything, domain.SpotStatusReserved).Return(reserved, nil)
	reservationRepo.EXPECT().ListBySpot(mock.Anything, "Demo Parking 1", "A3").Return(active, nil)

	released, err := svc.ReleaseLapsed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, released)
}

func TestReservationService_ReleaseLapsed_NoReservations(t *testing.T) {
	svc, reservationRepo, spotRepo, _, spotCache, _ := newReservationService(t)

	reserved := []domain.ParkingSpot{
		{Complex: "Demo Parking 2", SpotID: "B7", Status: domain.SpotStatusReserved},
	}

	spotRepo.EXPECT().ListByStatus(mock.Anything, domain.SpotStatusReserved).Return(reserved, nil)
	reservationRepo.EXPECT().ListBySpot(mock.Anything, "Demo Parking 2", "B7").Return(nil, nil)
	spotRepo.EXPECT().Release(mock.Anything, "Demo Parking 2", "B7").Return(true, nil)
	spotCache.EXPECT().Invalidate("Demo Parking 2").Return()

	released, err := svc.ReleaseLapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, released, 1)
}

func TestReservationService_ReleaseLapsed_RepoError(t *testing.T) {
	svc, _, spotRepo, _, _, _ := newReservationService(t)

	spotRepo.EXPECT().ListByStatus(mock.Anything, domain.SpotStatusReserved).Return(nil, errors.New("db error"))

	_, err := svc.ReleaseLapsed(context.Background())

	require.Error(t, err)
}
