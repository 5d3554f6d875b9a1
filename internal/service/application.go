package service

import (
	"context"
	"errors"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type applicationService struct {
	appRepo repository.ApplicationRepository
}

func NewApplicationService(appRepo repository.ApplicationRepository) ApplicationService {
	return &applicationService{appRepo: appRepo}
}

func (s *applicationService) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	// Only independent applications authenticate on their own; everything
	// else needs a login link pointing back to the hub.
	if app.Type != domain.ApplicationTypeIndependent && app.LoginLink == "" {
		return nil, ErrApplicationLoginLink
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusActive
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) FindAll(ctx context.Context, f repository.Filters) ([]domain.Application, int64, error) {
	return s.appRepo.List(ctx, ApplicationFilterConfig, f)
}

func (s *applicationService) FindOne(ctx context.Context, id int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrApplicationNotFound
	}
	return app, err
}

func (s *applicationService) Update(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	existing, err := s.FindOne(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	if app.Type != domain.ApplicationTypeIndependent && app.LoginLink == "" {
		return nil, ErrApplicationLoginLink
	}
	if app.Status == "" {
		app.Status = existing.Status
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}
