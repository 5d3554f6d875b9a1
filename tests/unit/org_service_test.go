package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/events"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/service"
)

func newOrgService(orgRepo *MockOrganizationRepo, files *MockStorage) (service.OrganizationService, *events.Dispatcher) {
	dispatcher := events.NewDispatcher()
	return service.NewOrganizationService(orgRepo, files, dispatcher), dispatcher
}

func fullOrganization(id int32, cui string) *domain.Organization {
	org := newOrgPayload()
	org.ID = id
	org.General.ID = id
	org.General.CUI = cui
	org.Status = domain.OrganizationStatusActive
	return org
}

func TestOrganizationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, _ := newOrgService(orgRepo, new(MockStorage))

		org := newOrgPayload()
		orgRepo.On("Create", ctx, org).Return(nil)

		created, err := svc.Create(ctx, org)
		assert.NoError(t, err)
		assert.Equal(t, org, created)
		orgRepo.AssertExpectations(t)
	})

	t.Run("MissingSections", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, _ := newOrgService(orgRepo, new(MockStorage))

		org := newOrgPayload()
		org.Legal = nil

		_, err := svc.Create(ctx, org)
		assert.ErrorIs(t, err, service.ErrOrganizationIncomplete)
		orgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrganizationService_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, _ := newOrgService(orgRepo, new(MockStorage))

		orgRepo.On("UpdateStatus", ctx, int32(10), domain.OrganizationStatusActive).Return(nil)

		assert.NoError(t, svc.Activate(ctx, 10))
		orgRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, _ := newOrgService(orgRepo, new(MockStorage))

		orgRepo.On("UpdateStatus", ctx, int32(99), domain.OrganizationStatusActive).Return(repository.ErrNotFound)

		assert.ErrorIs(t, svc.Activate(ctx, 99), service.ErrOrganizationNotFound)
	})
}

func TestOrganizationService_UpdateGeneral(t *testing.T) {
	ctx := context.Background()

	t.Run("CUIChangeDispatchesEvent", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, dispatcher := newOrgService(orgRepo, new(MockStorage))

		var changed *domain.CUIChanged
		dispatcher.Subscribe(domain.CUIChanged{}.EventName(), func(ctx context.Context, e domain.Event) {
			ev := e.(domain.CUIChanged)
			changed = &ev
		})

		current := fullOrganization(10, "11111111")
		updated := fullOrganization(10, "22222222")
		general := &domain.OrganizationGeneral{ID: 10, Name: "Asociatia Verde", CUI: "22222222"}

		orgRepo.On("GetWithRelations", ctx, int32(10)).Return(current, nil).Once()
		orgRepo.On("UpdateGeneral", ctx, int32(10), general).Return(nil)
		orgRepo.On("GetWithRelations", ctx, int32(10)).Return(updated, nil).Once()

		result, err := svc.UpdateGeneral(ctx, 10, general)
		assert.NoError(t, err)
		assert.Equal(t, "22222222", result.CUI)
		if assert.NotNil(t, changed) {
			assert.Equal(t, int32(10), changed.OrganizationID)
			assert.Equal(t, "22222222", changed.CUI)
		}
	})

	t.Run("UnchangedCUINoEvent", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, dispatcher := newOrgService(orgRepo, new(MockStorage))

		dispatched := false
		dispatcher.Subscribe(domain.CUIChanged{}.EventName(), func(ctx context.Context, e domain.Event) {
			dispatched = true
		})

		current := fullOrganization(10, "11111111")
		general := &domain.OrganizationGeneral{ID: 10, Name: "Asociatia Verde", CUI: "11111111"}

		orgRepo.On("GetWithRelations", ctx, int32(10)).Return(current, nil)
		orgRepo.On("UpdateGeneral", ctx, int32(10), general).Return(nil)

		_, err := svc.UpdateGeneral(ctx, 10, general)
		assert.NoError(t, err)
		assert.False(t, dispatched)
	})

	t.Run("ReplacedLogoIsDeleted", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		files := new(MockStorage)
		svc, _ := newOrgService(orgRepo, files)

		current := fullOrganization(10, "11111111")
		current.General.LogoKey = "logos/old.png"
		general := &domain.OrganizationGeneral{ID: 10, Name: "Asociatia Verde", CUI: "11111111", LogoKey: "logos/new.png"}

		orgRepo.On("GetWithRelations", ctx, int32(10)).Return(current, nil)
		files.On("DeleteFile", ctx, "logos/old.png").Return(nil)
		orgRepo.On("UpdateGeneral", ctx, int32(10), general).Return(nil)

		_, err := svc.UpdateGeneral(ctx, 10, general)
		assert.NoError(t, err)
		files.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepo)
		svc, _ := newOrgService(orgRepo, new(MockStorage))

		orgRepo.On("GetWithRelations", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.UpdateGeneral(ctx, 99, &domain.OrganizationGeneral{})
		assert.ErrorIs(t, err, service.ErrOrganizationNotFound)
	})
}
