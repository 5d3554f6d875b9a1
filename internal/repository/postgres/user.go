package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	user.CreatedOn = time.Now().UTC()
	query := `INSERT INTO users (cognito_id, name, email, phone, password_hash, role, status, organization_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		user.CognitoID, user.Name, user.Email, user.Phone, user.PasswordHash,
		user.Role, user.Status, nullableID(user.OrganizationID), user.CreatedOn,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getBy(ctx, `id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `email = $1`, email)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	var orgID sql.NullInt32
	query := `SELECT id, cognito_id, name, email, phone, password_hash, role, status, organization_id, created_on
	          FROM users WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.CognitoID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash,
		&user.Role, &user.Status, &orgID, &user.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if orgID.Valid {
		id := orgID.Int32
		user.OrganizationID = &id
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context, cfg repository.FilterConfig, f repository.Filters) ([]domain.User, int64, error) {
	args := []interface{}{}
	where := `WHERE 1 = 1`
	search, searchArgs := searchClause(cfg, f, len(args)+1)
	args = append(args, searchArgs...)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users `+where+search, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, cognito_id, name, email, phone, password_hash, role, status, organization_id, created_on
	          FROM users ` + where + search + orderLimitClause(cfg, f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var orgID sql.NullInt32
		if err := rows.Scan(
			&user.ID, &user.CognitoID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash,
			&user.Role, &user.Status, &orgID, &user.CreatedOn,
		); err != nil {
			return nil, 0, err
		}
		if orgID.Valid {
			id := orgID.Int32
			user.OrganizationID = &id
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}
