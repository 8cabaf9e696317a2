package domain

import "time"

type SpotStatus string

const (
	SpotStatusAvailable SpotStatus = "available"
	SpotStatusOccupied  SpotStatus = "occupied"
	SpotStatusReserved  SpotStatus = "reserved"
)

// ParkingComplexes is the fixed set of complexes exposed to clients.
var ParkingComplexes = []string{
	"Demo Parking 1",
	"Demo Parking 2",
}

func IsKnownComplex(name string) bool {
	for _, c := range ParkingComplexes {
		if c == name {
			return true
		}
	}
	return false
}

type ParkingSpot struct {
	ID        int64      `json:"-"`
	Complex   string     `json:"parking_complex"`
	SpotID    string     `json:"spot_id"`
	Status    SpotStatus `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SpotRef identifies a spot within a complex.
type SpotRef struct {
	Complex string
	SpotID  string
}
