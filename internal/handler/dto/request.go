package dto

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name" binding:"required"`
	VehiclePlate   string `json:"vehicle_plate"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required"`
	VehiclePlate string `json:"vehicle_plate"`
}

type CreateReservationRequest struct {
	ParkingComplex string `json:"parking_complex" binding:"required"`
	SpotID         string `json:"spot_id" binding:"required"`
	VehiclePlate   string `json:"vehicle_plate" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Duration       string `json:"duration" binding:"required"`
}

type ExtendReservationRequest struct {
	Duration string `json:"duration" binding:"required"`
}
