package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds an instant on 2026-03-14 at the given hour and minute.
func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		time     string
		duration string
		now      time.Time
		want     Bucket
	}{
		{
			name:     "future date is upcoming regardless of slot",
			date:     "2026-03-15",
			time:     "1:00 AM",
			duration: "30 min",
			now:      at(23, 59),
			want:     BucketUpcoming,
		},
		{
			name:     "past date is past regardless of slot",
			date:     "2026-03-13",
			time:     "11:00 PM",
			duration: "24 hours",
			now:      at(0, 0),
			want:     BucketPast,
		},
		{
			name:     "today, slot after current hour is upcoming",
			date:     "2026-03-14",
			time:     "3:00 PM",
			duration: "1 hour",
			now:      at(10, 30),
			want:     BucketUpcoming,
		},
		{
			name:     "today, started this hour is live",
			date:     "2026-03-14",
			time:     "12:00 PM",
			duration: "1 hour",
			now:      at(12, 45),
			want:     BucketLive,
		},
		{
			name:     "today, window elapsed is past",
			date:     "2026-03-14",
			time:     "12:00 PM",
			duration: "1 hour",
			now:      at(14, 0),
			want:     BucketPast,
		},
		{
			name:     "today, window ends exactly at current hour is past",
			date:     "2026-03-14",
			time:     "10:00 AM",
			duration: "2 hours",
			now:      at(12, 0),
			want:     BucketPast,
		},
		{
			name:     "all-day reservation is live until midnight",
			date:     "2026-03-14",
			time:     "9:00 AM",
			duration: "24 hours",
			now:      at(23, 59),
			want:     BucketLive,
		},
		{
			name:     "30 min within its start hour is live",
			date:     "2026-03-14",
			time:     "10:00 AM",
			duration: "30 min",
			now:      at(10, 50),
			want:     BucketLive,
		},
		{
			name:     "30 min after its start hour is past",
			date:     "2026-03-14",
			time:     "10:00 AM",
			duration: "30 min",
			now:      at(11, 0),
			want:     BucketPast,
		},
		{
			name:     "midnight slot parses as hour zero",
			date:     "2026-03-14",
			time:     "12:00 AM",
			duration: "1 hour",
			now:      at(0, 30),
			want:     BucketLive,
		},
		{
			name:     "midnight slot is past by one",
			date:     "2026-03-14",
			time:     "12:00 AM",
			duration: "1 hour",
			now:      at(1, 0),
			want:     BucketPast,
		},
		{
			name:     "noon slot parses as hour twelve",
			date:     "2026-03-14",
			time:     "12:00 PM",
			duration: "1 hour",
			now:      at(11, 0),
			want:     BucketUpcoming,
		},
		{
			name:     "evening PM slot converts to 24-hour clock",
			date:     "2026-03-14",
			time:     "11:00 PM",
			duration: "1 hour",
			now:      at(22, 0),
			want:     BucketUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.date, tt.time, tt.duration, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_MalformedTimeSlot(t *testing.T) {
	_, err := Classify("2026-03-14", "noonish", "1 hour", at(10, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClassify_MalformedDuration(t *testing.T) {
	_, err := Classify("2026-03-14", "10:00 AM", "a while", at(10, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClassify_DateOnlyShortCircuits(t *testing.T) {
	// On other days the slot labels are never parsed, so malformed labels on
	// past reservations cannot break listing.
	got, err := Classify("2020-01-01", "garbage", "garbage", at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, BucketPast, got)
}

func TestBucketAt(t *testing.T) {
	r := &Reservation{
		Date:     "2026-03-14",
		Time:     "9:00 AM",
		Duration: "4 hours",
	}

	got, err := r.BucketAt(at(11, 15))
	require.NoError(t, err)
	assert.Equal(t, BucketLive, got)
}

func TestIsValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		assert.True(t, IsValidTimeSlot(slot), slot)
	}
	assert.False(t, IsValidTimeSlot("13:00 PM"))
	assert.False(t, IsValidTimeSlot(""))
}

func TestIsValidDuration(t *testing.T) {
	for _, d := range Durations {
		assert.True(t, IsValidDuration(d), d)
	}
	assert.False(t, IsValidDuration("3 hours"))
	assert.False(t, IsValidDuration(""))
}
