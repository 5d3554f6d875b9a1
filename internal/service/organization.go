package service

import (
	"context"
	"errors"
	"fmt"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/events"
	"orghub-backend/internal/logger"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/storage"
)

type organizationService struct {
	orgRepo    repository.OrganizationRepository
	files      storage.Storage
	dispatcher *events.Dispatcher
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	files storage.Storage,
	dispatcher *events.Dispatcher,
) OrganizationService {
	return &organizationService{
		orgRepo:    orgRepo,
		files:      files,
		dispatcher: dispatcher,
	}
}

func (s *organizationService) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	if org == nil || org.General == nil || org.Activity == nil || org.Legal == nil {
		return nil, ErrOrganizationIncomplete
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("create organization aggregate: %w", err)
	}
	return org, nil
}

func (s *organizationService) Activate(ctx context.Context, id int32) error {
	err := s.orgRepo.UpdateStatus(ctx, id, domain.OrganizationStatusActive)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrganizationNotFound
	}
	return err
}

func (s *organizationService) FindOne(ctx context.Context, id int32) (*domain.Organization, error) {
	org, err := s.orgRepo.GetWithRelations(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrganizationNotFound
	}
	return org, err
}

// UpdateGeneral saves the general profile section. A changed CUI invalidates
// the synced financial data, which is signalled through a CUIChanged event
// rather than handled inline.
func (s *organizationService) UpdateGeneral(ctx context.Context, orgID int32, general *domain.OrganizationGeneral) (*domain.OrganizationGeneral, error) {
	current, err := s.FindOne(ctx, orgID)
	if err != nil {
		return nil, err
	}

	cuiChanged := general.CUI != current.General.CUI

	// A replaced logo leaves the previous file orphaned; remove it.
	if general.LogoKey != "" && current.General.LogoKey != "" && general.LogoKey != current.General.LogoKey {
		if err := s.files.DeleteFile(ctx, current.General.LogoKey); err != nil {
			logger.Warn("Failed to delete replaced logo", "error", err, "key", current.General.LogoKey)
		}
	}

	if err := s.orgRepo.UpdateGeneral(ctx, orgID, general); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("update organization general: %w", err)
	}

	if cuiChanged {
		s.dispatcher.Dispatch(ctx, domain.CUIChanged{OrganizationID: orgID, CUI: general.CUI})
	}

	updated, err := s.orgRepo.GetWithRelations(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return updated.General, nil
}

func (s *organizationService) MarkFinancialOutOfSync(ctx context.Context, orgID int32) error {
	return s.orgRepo.MarkFinancialOutOfSync(ctx, orgID)
}
