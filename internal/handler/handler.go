package handler

import (
	"context"
	"errors"
	"net/http"

	"parkspot/internal/domain"
	"parkspot/internal/handler/dto"
	"parkspot/internal/middleware"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id, current, next string) error
}

type SpotSvc interface {
	Complexes() []string
	ListByComplex(ctx context.Context, complex string) ([]domain.ParkingSpot, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	ListBuckets(ctx context.Context, userID string) (*domain.ReservationBuckets, error)
	Extend(ctx context.Context, id, userID, duration string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id, userID string) error
}

type Handler struct {
	userService        UserSvc
	spotService        SpotSvc
	reservationService ReservationSvc
}

func NewHandler(userService UserSvc, spotService SpotSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		userService:        userService,
		spotService:        spotService,
		reservationService: reservationService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		VehiclePlate:   req.VehiclePlate,
		TelegramChatID: req.TelegramChatID,
	}

	user, token, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *Handler) ChangePassword(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "password updated"})
}

// Profile

func (h *Handler) GetProfile(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, domain.UpdateProfileInput{
		Name:         req.Name,
		VehiclePlate: req.VehiclePlate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Spots

func (h *Handler) ListComplexes(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"complexes": h.spotService.Complexes()})
}

func (h *Handler) ListSpots(c *ginext.Context) {
	complex := c.Query("complex")
	if complex == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "complex query parameter is required"})
		return
	}

	spots, err := h.spotService.ListByComplex(c.Request.Context(), complex)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpotResponse, 0, len(spots))
	for _, s := range spots {
		resp = append(resp, dto.ToSpotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReservationInput{
		UserID:       userID,
		Complex:      req.ParkingComplex,
		SpotID:       req.SpotID,
		VehiclePlate: req.VehiclePlate,
		Time:         req.Time,
		Duration:     req.Duration,
	}

	res, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	buckets, err := h.reservationService.ListBuckets(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationBucketsResponse(buckets))
}

func (h *Handler) ExtendReservation(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ExtendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.Extend(c.Request.Context(), id, userID, req.Duration)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSpotNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSpotNotAvailable),
		errors.Is(err, domain.ErrReservationPast):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func currentUserID(c *ginext.Context) (string, bool) {
	id := c.GetString(middleware.UserIDKey)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return "", false
	}
	return id, true
}
