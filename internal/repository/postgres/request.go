package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	req.CreatedOn = time.Now().UTC()
	query := `INSERT INTO requests (name, email, phone, organization_name, organization_id, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		req.Name, req.Email, req.Phone, req.OrganizationName, req.OrganizationID, req.Status, req.CreatedOn,
	).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.Request, error) {
	req := &domain.Request{Organization: &domain.Organization{}}
	var syncedOn sql.NullTime
	query := `SELECT r.id, r.name, r.email, r.phone, r.organization_name, r.organization_id, r.status, r.created_on,
	                 o.id, o.status, o.financial_status, o.synced_on, o.created_on
	          FROM requests r
	          JOIN organizations o ON o.id = r.organization_id
	          WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.OrganizationName, &req.OrganizationID,
		&req.Status, &req.CreatedOn,
		&req.Organization.ID, &req.Organization.Status, &req.Organization.FinancialStatus,
		&syncedOn, &req.Organization.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if syncedOn.Valid {
		req.Organization.SyncedOn = &syncedOn.Time
	}
	return req, nil
}

func (r *requestRepository) GetWithRelations(ctx context.Context, id int32) (*domain.Request, error) {
	req, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	org, err := loadOrganizationGraph(ctx, r.db, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	req.Organization = org
	return req, nil
}

func (r *requestRepository) FindPendingByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Request, error) {
	req := &domain.Request{}
	query := `SELECT id, name, email, phone, organization_name, organization_id, status, created_on
	          FROM requests
	          WHERE status = $1 AND (email = $2 OR phone = $3)
	          LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, domain.RequestStatusPending, email, phone).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.OrganizationName, &req.OrganizationID,
		&req.Status, &req.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id int32, status domain.RequestStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *requestRepository) ListPending(ctx context.Context, cfg repository.FilterConfig, f repository.Filters) ([]domain.Request, int64, error) {
	args := []interface{}{domain.RequestStatusPending}
	search, searchArgs := searchClause(cfg, f, len(args)+1)
	args = append(args, searchArgs...)

	var total int64
	countQuery := `SELECT COUNT(*) FROM requests WHERE status = $1` + search
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, email, phone, organization_name, organization_id, status, created_on
	          FROM requests
	          WHERE status = $1` + search + orderLimitClause(cfg, f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reqs []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(
			&req.ID, &req.Name, &req.Email, &req.Phone, &req.OrganizationName, &req.OrganizationID,
			&req.Status, &req.CreatedOn,
		); err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, req)
	}
	return reqs, total, rows.Err()
}
