package repository

import (
	"context"
	"errors"
	"time"

	"orghub-backend/internal/domain"
)

// ErrNotFound is returned by repositories when no row matches. Services map
// it onto their own error taxonomy.
var ErrNotFound = errors.New("record not found")

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	// GetByID loads a request together with its organization summary row.
	GetByID(ctx context.Context, id int32) (*domain.Request, error)
	// GetWithRelations loads a request with the full nested organization
	// graph (general with city/county, activity with domains, legal,
	// financial rows, report).
	GetWithRelations(ctx context.Context, id int32) (*domain.Request, error)
	// FindPendingByEmailOrPhone returns a PENDING request matching either
	// contact field, used for the duplicate check before insert.
	FindPendingByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error
	// ListPending returns the PENDING page described by the filter config
	// and filters, plus the total PENDING count.
	ListPending(ctx context.Context, cfg FilterConfig, f Filters) ([]domain.Request, int64, error)
}

type OrganizationRepository interface {
	// Create persists the whole organization aggregate (general, activity,
	// legal, report, organization row, financial rows) in one transaction.
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	GetWithRelations(ctx context.Context, id int32) (*domain.Organization, error)
	UpdateStatus(ctx context.Context, id int32, status domain.OrganizationStatus) error
	UpdateGeneral(ctx context.Context, orgID int32, general *domain.OrganizationGeneral) error
	// MarkFinancialOutOfSync clears synced_on and resets the financial
	// status so the sync job picks the organization up again.
	MarkFinancialOutOfSync(ctx context.Context, orgID int32) error
	UpdateSyncedOn(ctx context.Context, orgID int32, syncedOn time.Time) error
	// ListFinancialOutOfSync returns active organizations whose financial
	// data was never synced or was last synced before the given time.
	ListFinancialOutOfSync(ctx context.Context, before time.Time) ([]domain.Organization, error)
	// EnsureFinancialYear provisions the empty INCOME and EXPENSE rows for
	// a fiscal year if they do not exist yet.
	EnsureFinancialYear(ctx context.Context, orgID int32, year int32) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, cfg FilterConfig, f Filters) ([]domain.User, int64, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	List(ctx context.Context, cfg FilterConfig, f Filters) ([]domain.Application, int64, error)
}

type NomenclatureRepository interface {
	Cities(ctx context.Context, countyID int32, search string) ([]domain.City, error)
	Counties(ctx context.Context) ([]domain.County, error)
	Domains(ctx context.Context) ([]domain.Domain, error)
}
