package service

import (
	"context"
	"errors"
	"fmt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/events"
	"orghub-backend/internal/logger"
	"orghub-backend/internal/repository"
)

type requestService struct {
	reqRepo    repository.RequestRepository
	userRepo   repository.UserRepository
	orgSvc     OrganizationService
	userSvc    UserService
	dispatcher *events.Dispatcher
}

func NewRequestService(
	reqRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	orgSvc OrganizationService,
	userSvc UserService,
	dispatcher *events.Dispatcher,
) RequestService {
	return &requestService{
		reqRepo:    reqRepo,
		userRepo:   userRepo,
		orgSvc:     orgSvc,
		userSvc:    userSvc,
		dispatcher: dispatcher,
	}
}

func (s *requestService) Create(ctx context.Context, admin AdminContact, org *domain.Organization) (*domain.Request, error) {
	// The admin email must not belong to an existing user.
	_, err := s.userRepo.GetByEmail(ctx, admin.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	// At most one PENDING request per email or phone.
	_, err = s.reqRepo.FindPendingByEmailOrPhone(ctx, admin.Email, admin.Phone)
	if err == nil {
		return nil, ErrRequestExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check pending request: %w", err)
	}

	created, err := s.orgSvc.Create(ctx, org)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create organization for request", "error", err, "email", admin.Email)
		return nil, err
	}

	req := &domain.Request{
		Name:             admin.Name,
		Email:            admin.Email,
		Phone:            admin.Phone,
		OrganizationName: created.General.Name,
		OrganizationID:   created.ID,
		Status:           domain.RequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		logger.ErrorContext(ctx, "Failed to persist request", "error", err, "organization_id", created.ID)
		return nil, fmt.Errorf("persist request: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.RequestCreated{
		RequestID:        req.ID,
		Name:             req.Name,
		Email:            req.Email,
		OrganizationName: req.OrganizationName,
	})

	return req, nil
}

func (s *requestService) Approve(ctx context.Context, id int32) (*domain.Request, error) {
	req, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != domain.RequestStatusPending {
		return nil, ErrRequestNotPending
	}
	if req.Organization == nil || req.Organization.Status != domain.OrganizationStatusPending {
		return nil, ErrRequestNotPending
	}

	// Three sequential writes, no wrapping transaction; the request-status
	// write goes last so a partial failure leaves the request re-approvable.
	if err := s.orgSvc.Activate(ctx, req.OrganizationID); err != nil {
		return nil, err
	}

	_, tempPassword, err := s.userSvc.CreateAdmin(ctx, CreateAdminInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.reqRepo.UpdateStatus(ctx, id, domain.RequestStatusApproved); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.RequestApproved{
		RequestID:         id,
		OrganizationID:    req.OrganizationID,
		Name:              req.Name,
		Email:             req.Email,
		OrganizationName:  req.OrganizationName,
		TemporaryPassword: tempPassword,
	})

	return s.reqRepo.GetWithRelations(ctx, id)
}

func (s *requestService) Reject(ctx context.Context, id int32) (*domain.Request, error) {
	req, err := s.getRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != domain.RequestStatusPending {
		return nil, ErrRequestNotPending
	}

	if err := s.reqRepo.UpdateStatus(ctx, id, domain.RequestStatusDeclined); err != nil {
		return nil, fmt.Errorf("update request status: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.RequestRejected{
		RequestID:        id,
		Name:             req.Name,
		Email:            req.Email,
		OrganizationName: req.OrganizationName,
	})

	return s.reqRepo.GetByID(ctx, id)
}

func (s *requestService) FindAll(ctx context.Context, f repository.Filters) ([]domain.Request, int64, error) {
	return s.reqRepo.ListPending(ctx, RequestFilterConfig, f)
}

func (s *requestService) FindOne(ctx context.Context, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetWithRelations(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRequestNotFound
	}
	return req, err
}

func (s *requestService) getRequest(ctx context.Context, id int32) (*domain.Request, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load request: %w", err)
	}
	return req, nil
}
