package ports

import (
	"context"

	"parkspot/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
