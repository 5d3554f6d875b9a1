package unit

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/service"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) GetWithRelations(ctx context.Context, id int32) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) FindPendingByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Request, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRequestRepo) ListPending(ctx context.Context, cfg repository.FilterConfig, f repository.Filters) ([]domain.Request, int64, error) {
	args := m.Called(ctx, cfg, f)
	return args.Get(0).([]domain.Request), args.Get(1).(int64), args.Error(2)
}

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) GetWithRelations(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) UpdateStatus(ctx context.Context, id int32, status domain.OrganizationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOrganizationRepo) UpdateGeneral(ctx context.Context, orgID int32, general *domain.OrganizationGeneral) error {
	args := m.Called(ctx, orgID, general)
	return args.Error(0)
}
func (m *MockOrganizationRepo) MarkFinancialOutOfSync(ctx context.Context, orgID int32) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}
func (m *MockOrganizationRepo) UpdateSyncedOn(ctx context.Context, orgID int32, syncedOn time.Time) error {
	args := m.Called(ctx, orgID, syncedOn)
	return args.Error(0)
}
func (m *MockOrganizationRepo) ListFinancialOutOfSync(ctx context.Context, before time.Time) ([]domain.Organization, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) EnsureFinancialYear(ctx context.Context, orgID int32, year int32) error {
	args := m.Called(ctx, orgID, year)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context, cfg repository.FilterConfig, f repository.Filters) ([]domain.User, int64, error) {
	args := m.Called(ctx, cfg, f)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) List(ctx context.Context, cfg repository.FilterConfig, f repository.Filters) ([]domain.Application, int64, error) {
	args := m.Called(ctx, cfg, f)
	return args.Get(0).([]domain.Application), args.Get(1).(int64), args.Error(2)
}

// MockOrgService
type MockOrgService struct {
	mock.Mock
}

func (m *MockOrgService) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrgService) Activate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrgService) FindOne(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrgService) UpdateGeneral(ctx context.Context, orgID int32, general *domain.OrganizationGeneral) (*domain.OrganizationGeneral, error) {
	args := m.Called(ctx, orgID, general)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationGeneral), args.Error(1)
}
func (m *MockOrgService) MarkFinancialOutOfSync(ctx context.Context, orgID int32) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateAdmin(ctx context.Context, input service.CreateAdminInput) (*domain.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockUserService) FindAll(ctx context.Context, f repository.Filters) ([]domain.User, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserService) FindOne(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
