package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/service"
)

func TestUserService_CreateAdmin(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := service.NewUserService(userRepo)

	var created *domain.User
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		created = u
		return u.Role == domain.UserRoleAdmin &&
			u.Status == domain.UserStatusPending &&
			u.OrganizationID != nil && *u.OrganizationID == int32(10) &&
			u.CognitoID != ""
	})).Return(nil)

	user, tempPassword, err := svc.CreateAdmin(ctx, service.CreateAdminInput{
		Name:           "Ion Popescu",
		Email:          "ion@verde.ro",
		Phone:          "0712345678",
		OrganizationID: 10,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, tempPassword)
	assert.Equal(t, created, user)

	// The stored hash must verify against the returned one-time password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tempPassword)))
	userRepo.AssertExpectations(t)
}

func TestUserService_FindOne(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Email: "ion@verde.ro"}, nil)

		user, err := svc.FindOne(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.FindOne(ctx, 99)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_FindAll(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	svc := service.NewUserService(userRepo)

	f := repository.Filters{Page: 1, PageSize: 10}
	userRepo.On("List", ctx, service.UserFilterConfig, f).
		Return([]domain.User{{ID: 1}, {ID: 2}}, int64(2), nil)

	users, total, err := svc.FindAll(ctx, f)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(2), total)
}
