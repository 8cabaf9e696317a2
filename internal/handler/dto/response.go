package dto

import (
	"time"

	"parkspot/internal/domain"
)

type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	VehiclePlate string `json:"vehicle_plate"`
	CreatedAt    string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SpotResponse struct {
	ParkingComplex string `json:"parking_complex"`
	SpotID         string `json:"spot_id"`
	Status         string `json:"status"`
}

type ReservationResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	ParkingComplex string `json:"parking_complex"`
	SpotID         string `json:"spot_id"`
	VehiclePlate   string `json:"vehicle_plate"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Duration       string `json:"duration"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type ReservationBucketsResponse struct {
	Upcoming []ReservationResponse `json:"upcoming"`
	Live     []ReservationResponse `json:"live"`
	Past     []ReservationResponse `json:"past"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		VehiclePlate: u.VehiclePlate,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

func ToSpotResponse(s domain.ParkingSpot) SpotResponse {
	return SpotResponse{
		ParkingComplex: s.Complex,
		SpotID:         s.SpotID,
		Status:         string(s.Status),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		ParkingComplex: r.Complex,
		SpotID:         r.SpotID,
		VehiclePlate:   r.VehiclePlate,
		Date:           r.Date,
		Time:           r.Time,
		Duration:       r.Duration,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationBucketsResponse(b *domain.ReservationBuckets) ReservationBucketsResponse {
	return ReservationBucketsResponse{
		Upcoming: toReservationList(b.Upcoming),
		Live:     toReservationList(b.Live),
		Past:     toReservationList(b.Past),
	}
}

func toReservationList(in []*domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(in))
	for _, r := range in {
		out = append(out, ToReservationResponse(r))
	}
	return out
}
