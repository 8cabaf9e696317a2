package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"parkspot/internal/domain"
	"parkspot/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ReleasesSpots(t *testing.T) {
	releaser := mocks.NewMockSpotReleaser(t)
	log := newTestLogger(t)

	s := New(releaser, 50*time.Millisecond, log)

	released := []domain.SpotRef{
		{Complex: "Demo Parking 1", SpotID: "A3"},
	}
	releaser.EXPECT().ReleaseLapsed(mock.Anything).Return(released, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(releaser.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	releaser := mocks.NewMockSpotReleaser(t)
	log := newTestLogger(t)

	s := New(releaser, 50*time.Millisecond, log)

	releaser.EXPECT().ReleaseLapsed(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(releaser.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	releaser := mocks.NewMockSpotReleaser(t)
	log := newTestLogger(t)

	s := New(releaser, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	releaser := mocks.NewMockSpotReleaser(t)
	log := newTestLogger(t)

	s := New(releaser, 30*time.Millisecond, log)

	releaser.EXPECT().ReleaseLapsed(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(releaser.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
