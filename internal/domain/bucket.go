package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format stored on reservations. ISO dates
// compare lexicographically in calendar order, which Classify relies on.
const DateLayout = "2006-01-02"

const durationAllDay = "24 hours"

// Classify maps a reservation's (date, time, duration) and the current instant
// to its display bucket. Comparison is on the whole current hour: a reservation
// that started earlier within the current hour is still live regardless of its
// duration.
func Classify(date, timeLabel, durationLabel string, now time.Time) (Bucket, error) {
	today := now.Format(DateLayout)
	if date > today {
		return BucketUpcoming, nil
	}
	if date < today {
		return BucketPast, nil
	}

	startHour, err := slotHour(timeLabel)
	if err != nil {
		return "", err
	}
	durHours, err := durationHours(durationLabel)
	if err != nil {
		return "", err
	}

	currentHour := now.Hour()
	switch {
	case startHour > currentHour:
		return BucketUpcoming, nil
	case float64(startHour)+durHours > float64(currentHour) || durationLabel == durationAllDay:
		return BucketLive, nil
	default:
		return BucketPast, nil
	}
}

// BucketAt returns the reservation's bucket at the given instant. The stored
// Status field is not consulted.
func (r *Reservation) BucketAt(now time.Time) (Bucket, error) {
	return Classify(r.Date, r.Time, r.Duration, now)
}

// slotHour converts a 12-hour slot label ("H:MM AM|PM") to a 24-hour hour.
func slotHour(label string) (int, error) {
	hourStr, _, ok := strings.Cut(label, ":")
	if !ok {
		return 0, fmt.Errorf("%w: malformed time slot %q", ErrValidation, label)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return 0, fmt.Errorf("%w: malformed time slot %q", ErrValidation, label)
	}

	switch {
	case strings.Contains(label, "PM") && hour < 12:
		hour += 12
	case strings.Contains(label, "AM") && hour == 12:
		hour = 0
	}

	return hour, nil
}

// durationHours converts a duration label to an hour count. Minute-based labels
// become fractional hours.
func durationHours(label string) (float64, error) {
	lead, _, _ := strings.Cut(label, " ")
	n, err := strconv.Atoi(lead)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed duration %q", ErrValidation, label)
	}

	hours := float64(n)
	if strings.Contains(label, "min") {
		hours /= 60
	}

	return hours, nil
}
