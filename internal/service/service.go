package service

import (
	"context"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

// AdminContact carries the applicant's contact fields; on approval they
// become the provisioned admin user.
type AdminContact struct {
	Name  string
	Email string
	Phone string
}

type CreateAdminInput struct {
	Name           string
	Email          string
	Phone          string
	OrganizationID int32
}

type RequestService interface {
	Create(ctx context.Context, admin AdminContact, org *domain.Organization) (*domain.Request, error)
	Approve(ctx context.Context, id int32) (*domain.Request, error)
	Reject(ctx context.Context, id int32) (*domain.Request, error)
	FindAll(ctx context.Context, f repository.Filters) ([]domain.Request, int64, error)
	FindOne(ctx context.Context, id int32) (*domain.Request, error)
}

type OrganizationService interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	Activate(ctx context.Context, id int32) error
	FindOne(ctx context.Context, id int32) (*domain.Organization, error)
	UpdateGeneral(ctx context.Context, orgID int32, general *domain.OrganizationGeneral) (*domain.OrganizationGeneral, error)
	MarkFinancialOutOfSync(ctx context.Context, orgID int32) error
}

type UserService interface {
	// CreateAdmin provisions the organization administrator. It returns the
	// user together with the generated one-time password, which is only
	// ever handed to the notification path.
	CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.User, string, error)
	FindAll(ctx context.Context, f repository.Filters) ([]domain.User, int64, error)
	FindOne(ctx context.Context, id int32) (*domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type ApplicationService interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindAll(ctx context.Context, f repository.Filters) ([]domain.Application, int64, error)
	FindOne(ctx context.Context, id int32) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

type NomenclatureService interface {
	Cities(ctx context.Context, countyID int32, search string) ([]domain.City, error)
	Counties(ctx context.Context) ([]domain.County, error)
	Domains(ctx context.Context) ([]domain.Domain, error)
}
