package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	app.CreatedOn = time.Now().UTC()
	query := `INSERT INTO applications
	          (name, type, status, login_link, website, logo, short_description, description, steps, created_on)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		app.Name, app.Type, app.Status, app.LoginLink, app.Website, app.LogoKey,
		app.ShortDescription, app.Description, pq.Array(app.Steps), app.CreatedOn,
	).Scan(&app.ID)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, name, type, status, login_link, website, logo, short_description, description, steps, created_on
	          FROM applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.Name, &app.Type, &app.Status, &app.LoginLink, &app.Website, &app.LogoKey,
		&app.ShortDescription, &app.Description, pq.Array(&app.Steps), &app.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE applications SET
		   name = $1, type = $2, status = $3, login_link = $4, website = $5,
		   logo = $6, short_description = $7, description = $8, steps = $9
		 WHERE id = $10`,
		app.Name, app.Type, app.Status, app.LoginLink, app.Website,
		app.LogoKey, app.ShortDescription, app.Description, pq.Array(app.Steps), app.ID,
	)
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

func (r *applicationRepository) List(ctx context.Context, cfg repository.FilterConfig, f repository.Filters) ([]domain.Application, int64, error) {
	args := []interface{}{}
	search, searchArgs := searchClause(cfg, f, len(args)+1)
	args = append(args, searchArgs...)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE 1 = 1`+search, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, type, status, login_link, website, logo, short_description, description, steps, created_on
	          FROM applications WHERE 1 = 1` + search + orderLimitClause(cfg, f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Type, &app.Status, &app.LoginLink, &app.Website, &app.LogoKey,
			&app.ShortDescription, &app.Description, pq.Array(&app.Steps), &app.CreatedOn,
		); err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, rows.Err()
}
