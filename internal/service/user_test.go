package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"parkspot/internal/auth"
	"parkspot/internal/domain"
	"parkspot/internal/service/ports/mocks"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewUserService(repo, tokens, bcrypt.MinCost)
	return svc, repo
}

func TestUserService_Register_Success(t *testing.T) {
	svc, repo := newUserService(t)

	var created *domain.User
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, user *domain.User) {
		created = user
	}).Return(nil)

	user, token, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:        " Alice@Example.com ",
		Password:     "secret1",
		Name:         "Alice",
		VehiclePlate: "KA-01-1234",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, created, user)

	// The stored hash verifies against the original password.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestUserService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input domain.RegisterInput
	}{
		{"missing email", domain.RegisterInput{Password: "secret1", Name: "Alice"}},
		{"invalid email", domain.RegisterInput{Email: "not-an-email", Password: "secret1", Name: "Alice"}},
		{"short password", domain.RegisterInput{Email: "a@b.com", Password: "12345", Name: "Alice"}},
		{"missing name", domain.RegisterInput{Email: "a@b.com", Password: "secret1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(t)

			_, _, err := svc.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, _, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "a@b.com",
		Password: "secret1",
		Name:     "Alice",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "a@b.com").Return(user, nil)

	got, token, err := svc.Login(context.Background(), " A@B.com ", "secret1")

	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.NotEmpty(t, token)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "a@b.com").Return(user, nil)

	_, _, err = svc.Login(context.Background(), "a@b.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "a@b.com").Return(nil, domain.ErrUserNotFound)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, _, err := svc.Login(context.Background(), "a@b.com", "secret1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	svc, repo := newUserService(t)

	input := domain.UpdateProfileInput{Name: "Alice B", VehiclePlate: "KA-02-5678"}
	updated := &domain.User{ID: "u1", Name: "Alice B", VehiclePlate: "KA-02-5678"}

	repo.EXPECT().UpdateProfile(mock.Anything, "u1", input).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(updated, nil)

	got, err := svc.UpdateProfile(context.Background(), "u1", input)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserService_UpdateProfile_EmptyName(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.UpdateProfile(context.Background(), "u1", domain.UpdateProfileInput{Name: "  "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("current1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", PasswordHash: string(hash)}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	var newHash string
	repo.EXPECT().UpdatePassword(mock.Anything, "u1", mock.Anything).Run(func(_ context.Context, _ string, passwordHash string) {
		newHash = passwordHash
	}).Return(nil)

	err = svc.ChangePassword(context.Background(), "u1", "current1", "brand-new")

	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("brand-new")))
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("current1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	err = svc.ChangePassword(context.Background(), "u1", "wrong", "brand-new")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_ChangePassword_TooShort(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.ChangePassword(context.Background(), "u1", "current1", "tiny")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
