package domain

import "time"

type Bucket string

const (
	BucketUpcoming Bucket = "upcoming"
	BucketLive     Bucket = "live"
	BucketPast     Bucket = "past"
)

// TimeSlots are the 24 hour-aligned slots offered to clients, in 12-hour labels.
var TimeSlots = []string{
	"12:00 AM", "1:00 AM", "2:00 AM", "3:00 AM", "4:00 AM", "5:00 AM",
	"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	"6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM", "11:00 PM",
}

// Durations are the fixed duration labels offered to clients.
var Durations = []string{
	"30 min",
	"1 hour",
	"2 hours",
	"4 hours",
	"8 hours",
	"24 hours",
}

func IsValidTimeSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

func IsValidDuration(label string) bool {
	for _, d := range Durations {
		if d == label {
			return true
		}
	}
	return false
}

// Reservation holds a booking of one spot for the creation day. Status is the
// bucket recorded at creation; reads recompute it from Date, Time and Duration.
type Reservation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Complex      string    `json:"parking_complex"`
	SpotID       string    `json:"spot_id"`
	VehiclePlate string    `json:"vehicle_plate"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Duration     string    `json:"duration"`
	Status       Bucket    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateReservationInput struct {
	UserID       string
	Complex      string
	SpotID       string
	VehiclePlate string
	Time         string
	Duration     string
}

// ReservationBuckets partitions a user's reservations for display.
type ReservationBuckets struct {
	Upcoming []*Reservation `json:"upcoming"`
	Live     []*Reservation `json:"live"`
	Past     []*Reservation `json:"past"`
}
