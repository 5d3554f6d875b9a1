package postgres

import (
	"context"
	"database/sql"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type nomenclatureRepository struct {
	db *sql.DB
}

func NewNomenclatureRepository(db *sql.DB) repository.NomenclatureRepository {
	return &nomenclatureRepository{db: db}
}

func (r *nomenclatureRepository) Cities(ctx context.Context, countyID int32, search string) ([]domain.City, error) {
	query := `SELECT id, name, county_id FROM cities WHERE 1 = 1`
	args := []interface{}{}
	if countyID > 0 {
		args = append(args, countyID)
		query += ` AND county_id = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		if len(args) == 1 {
			query += ` AND name ILIKE $1`
		} else {
			query += ` AND name ILIKE $2`
		}
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CountyID); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *nomenclatureRepository) Counties(ctx context.Context) ([]domain.County, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, abbreviation FROM counties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counties []domain.County
	for rows.Next() {
		var c domain.County
		if err := rows.Scan(&c.ID, &c.Name, &c.Abbreviation); err != nil {
			return nil, err
		}
		counties = append(counties, c)
	}
	return counties, rows.Err()
}

func (r *nomenclatureRepository) Domains(ctx context.Context) ([]domain.Domain, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM domains ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []domain.Domain
	for rows.Next() {
		var d domain.Domain
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}
