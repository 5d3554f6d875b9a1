package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateAdmin provisions the organization administrator from the approved
// request's contact fields. The duplicate email check already happened at
// request creation time, so none is repeated here.
func (s *userService) CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.User, string, error) {
	tempPassword := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash temporary password: %w", err)
	}

	orgID := input.OrganizationID
	user := &domain.User{
		CognitoID:      uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		PasswordHash:   string(hash),
		Role:           domain.UserRoleAdmin,
		Status:         domain.UserStatusPending,
		OrganizationID: &orgID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create admin user: %w", err)
	}
	return user, tempPassword, nil
}

func (s *userService) FindAll(ctx context.Context, f repository.Filters) ([]domain.User, int64, error) {
	return s.userRepo.List(ctx, UserFilterConfig, f)
}

func (s *userService) FindOne(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
