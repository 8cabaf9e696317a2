package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parkspot/internal/auth"
	"parkspot/internal/domain"
	"parkspot/internal/service/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

type UserService struct {
	repo       ports.UserRepo
	tokens     *auth.TokenManager
	bcryptCost int
}

func NewUserService(repo ports.UserRepo, tokens *auth.TokenManager, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Name:           strings.TrimSpace(input.Name),
		VehiclePlate:   strings.TrimSpace(input.VehiclePlate),
		PasswordHash:   string(hash),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.VehiclePlate = strings.TrimSpace(input.VehiclePlate)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	if err := s.repo.UpdateProfile(ctx, id, input); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, id, current, next string) error {
	if len(next) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err = s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func validateRegisterInput(input domain.RegisterInput) error {
	email := strings.TrimSpace(input.Email)
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	case len(input.Password) < minPasswordLen:
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}
