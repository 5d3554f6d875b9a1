package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/security"
	"orghub-backend/internal/service"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret", 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}
	user := &domain.User{
		ID:           7,
		Email:        "ion@verde.ro",
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		token, loggedIn, err := svc.Login(ctx, user.Email, "correct-password")
		assert.NoError(t, err)
		assert.Equal(t, user, loggedIn)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
		assert.Equal(t, string(domain.UserRoleAdmin), claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		_, _, err := svc.Login(ctx, user.Email, "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@verde.ro").Return(nil, repository.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@verde.ro", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
