package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrSpotNotFound        = errors.New("parking spot not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrSpotNotAvailable = errors.New("parking spot is not available")
	ErrReservationPast  = errors.New("reservation is already past")
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("reservation belongs to another user")
)

var (
	ErrValidation = errors.New("validation error")
)
