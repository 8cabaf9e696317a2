package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	VehiclePlate   string    `json:"vehicle_plate"`
	PasswordHash   string    `json:"-"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterInput struct {
	Email          string
	Password       string
	Name           string
	VehiclePlate   string
	TelegramChatID *int64
}

type UpdateProfileInput struct {
	Name         string
	VehiclePlate string
}
