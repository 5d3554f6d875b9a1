package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// Create persists the aggregate in one transaction: profile entities first,
// then the organization row pointing at them, then the dependent collections.
func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin organization create: %w", err)
	}
	defer tx.Rollback()

	g := org.General
	err = tx.QueryRowContext(ctx,
		`INSERT INTO organization_general
		 (name, alias, cui, raf_number, year_created, short_description, description, logo,
		  address, city_id, county_id, email, phone, website, contact_name, contact_email, contact_phone)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17) RETURNING id`,
		g.Name, g.Alias, g.CUI, g.RAFNumber, g.YearCreated, g.ShortDescription, g.Description, g.LogoKey,
		g.Address, nullableID(g.CityID), nullableID(g.CountyID), g.Email, g.Phone, g.Website,
		g.ContactName, g.ContactEmail, g.ContactPhone,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("insert organization general: %w", err)
	}

	a := org.Activity
	err = tx.QueryRowContext(ctx,
		`INSERT INTO organization_activity
		 (area, is_part_of_federation, is_part_of_coalition, is_social_service_viable, offered_services)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		a.Area, a.IsPartOfFederation, a.IsPartOfCoalition, a.IsSocialServiceViable, a.OfferedServices,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert organization activity: %w", err)
	}
	for _, domainID := range a.DomainIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO activity_domains (activity_id, domain_id) VALUES ($1, $2)`,
			a.ID, domainID,
		); err != nil {
			return fmt.Errorf("insert activity domain: %w", err)
		}
	}

	l := org.Legal
	err = tx.QueryRowContext(ctx,
		`INSERT INTO organization_legal
		 (representative_name, representative_email, representative_phone, representative_role,
		  directors_count, others_can_represent, organization_statute)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		l.RepresentativeName, l.RepresentativeEmail, l.RepresentativePhone, l.RepresentativeRole,
		l.DirectorsCount, l.OthersCanRepresent, l.OrganizationStatuteKey,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert organization legal: %w", err)
	}

	rep := org.Report
	if rep == nil {
		rep = &domain.OrganizationReport{}
		org.Report = rep
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO organization_report (reports, partners, investors)
		 VALUES ($1,$2,$3) RETURNING id`,
		pq.Array(rep.ReportKeys), pq.Array(rep.PartnerKeys), pq.Array(rep.InvestorKeys),
	).Scan(&rep.ID)
	if err != nil {
		return fmt.Errorf("insert organization report: %w", err)
	}

	org.Status = domain.OrganizationStatusPending
	org.FinancialStatus = domain.FinancialStatusNotCompleted
	org.CreatedOn = time.Now().UTC()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO organizations
		 (status, financial_status, created_on,
		  organization_general_id, organization_activity_id, organization_legal_id, organization_report_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		org.Status, org.FinancialStatus, org.CreatedOn, g.ID, a.ID, l.ID, rep.ID,
	).Scan(&org.ID)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}

	for i := range org.Financial {
		fin := &org.Financial[i]
		fin.OrganizationID = org.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO organization_financial
			 (organization_id, type, year, total, number_of_employees, status, synced_anaf)
			 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
			fin.OrganizationID, fin.Type, fin.Year, fin.Total, fin.NumberOfEmployees, fin.Status, fin.SyncedAnaf,
		).Scan(&fin.ID)
		if err != nil {
			return fmt.Errorf("insert organization financial: %w", err)
		}
	}

	return tx.Commit()
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	return scanOrganizationRow(r.db.QueryRowContext(ctx,
		`SELECT id, status, financial_status, synced_on, created_on FROM organizations WHERE id = $1`, id))
}

func (r *organizationRepository) GetWithRelations(ctx context.Context, id int32) (*domain.Organization, error) {
	return loadOrganizationGraph(ctx, r.db, id)
}

func (r *organizationRepository) UpdateStatus(ctx context.Context, id int32, status domain.OrganizationStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE organizations SET status = $1 WHERE id = $2`, status, id)
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

func (r *organizationRepository) UpdateGeneral(ctx context.Context, orgID int32, g *domain.OrganizationGeneral) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organization_general SET
		   name = $1, alias = $2, cui = $3, raf_number = $4, year_created = $5,
		   short_description = $6, description = $7, logo = $8, address = $9,
		   city_id = $10, county_id = $11, email = $12, phone = $13, website = $14,
		   contact_name = $15, contact_email = $16, contact_phone = $17
		 FROM organizations o
		 WHERE organization_general.id = o.organization_general_id AND o.id = $18`,
		g.Name, g.Alias, g.CUI, g.RAFNumber, g.YearCreated,
		g.ShortDescription, g.Description, g.LogoKey, g.Address,
		nullableID(g.CityID), nullableID(g.CountyID), g.Email, g.Phone, g.Website,
		g.ContactName, g.ContactEmail, g.ContactPhone, orgID,
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

func (r *organizationRepository) MarkFinancialOutOfSync(ctx context.Context, orgID int32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET synced_on = NULL, financial_status = $1 WHERE id = $2`,
		domain.FinancialStatusNotCompleted, orgID)
	return err
}

func (r *organizationRepository) UpdateSyncedOn(ctx context.Context, orgID int32, syncedOn time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET synced_on = $1 WHERE id = $2`, syncedOn, orgID)
	return err
}

func (r *organizationRepository) ListFinancialOutOfSync(ctx context.Context, before time.Time) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, status, financial_status, synced_on, created_on
		 FROM organizations
		 WHERE status = $1 AND (synced_on IS NULL OR synced_on < $2)`,
		domain.OrganizationStatusActive, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		var syncedOn sql.NullTime
		if err := rows.Scan(&org.ID, &org.Status, &org.FinancialStatus, &syncedOn, &org.CreatedOn); err != nil {
			return nil, err
		}
		if syncedOn.Valid {
			org.SyncedOn = &syncedOn.Time
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) EnsureFinancialYear(ctx context.Context, orgID int32, year int32) error {
	for _, finType := range []string{"INCOME", "EXPENSE"} {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO organization_financial
			 (organization_id, type, year, total, number_of_employees, status, synced_anaf)
			 VALUES ($1, $2, $3, 0, 0, $4, false)
			 ON CONFLICT (organization_id, type, year) DO NOTHING`,
			orgID, finType, year, domain.FinancialStatusNotCompleted)
		if err != nil {
			return err
		}
	}
	return nil
}

func nullableID(id *int32) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrganizationRow(row rowScanner) (*domain.Organization, error) {
	org := &domain.Organization{}
	var syncedOn sql.NullTime
	err := row.Scan(&org.ID, &org.Status, &org.FinancialStatus, &syncedOn, &org.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if syncedOn.Valid {
		org.SyncedOn = &syncedOn.Time
	}
	return org, nil
}

// loadOrganizationGraph assembles the full aggregate: organization row plus
// general (with city and county), activity (with domains), legal, financial
// rows and report. Shared with the request repository for deep loads.
func loadOrganizationGraph(ctx context.Context, db *sql.DB, orgID int32) (*domain.Organization, error) {
	org := &domain.Organization{
		General:  &domain.OrganizationGeneral{},
		Activity: &domain.OrganizationActivity{},
		Legal:    &domain.OrganizationLegal{},
		Report:   &domain.OrganizationReport{},
	}
	var (
		syncedOn           sql.NullTime
		generalID          int32
		activityID         int32
		legalID            int32
		reportID           int32
	)
	err := db.QueryRowContext(ctx,
		`SELECT id, status, financial_status, synced_on, created_on,
		        organization_general_id, organization_activity_id, organization_legal_id, organization_report_id
		 FROM organizations WHERE id = $1`, orgID,
	).Scan(&org.ID, &org.Status, &org.FinancialStatus, &syncedOn, &org.CreatedOn,
		&generalID, &activityID, &legalID, &reportID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if syncedOn.Valid {
		org.SyncedOn = &syncedOn.Time
	}

	g := org.General
	var (
		cityID     sql.NullInt32
		countyID   sql.NullInt32
		cityName   sql.NullString
		countyName sql.NullString
		countyAbbr sql.NullString
	)
	err = db.QueryRowContext(ctx,
		`SELECT g.id, g.name, g.alias, g.cui, g.raf_number, g.year_created,
		        g.short_description, g.description, g.logo, g.address,
		        g.city_id, g.county_id, g.email, g.phone, g.website,
		        g.contact_name, g.contact_email, g.contact_phone,
		        c.name, ct.name, ct.abbreviation
		 FROM organization_general g
		 LEFT JOIN cities c ON c.id = g.city_id
		 LEFT JOIN counties ct ON ct.id = g.county_id
		 WHERE g.id = $1`, generalID,
	).Scan(&g.ID, &g.Name, &g.Alias, &g.CUI, &g.RAFNumber, &g.YearCreated,
		&g.ShortDescription, &g.Description, &g.LogoKey, &g.Address,
		&cityID, &countyID, &g.Email, &g.Phone, &g.Website,
		&g.ContactName, &g.ContactEmail, &g.ContactPhone,
		&cityName, &countyName, &countyAbbr)
	if err != nil {
		return nil, fmt.Errorf("load organization general: %w", err)
	}
	if cityID.Valid {
		id := cityID.Int32
		g.CityID = &id
		g.City = &domain.City{ID: id, Name: cityName.String, CountyID: countyID.Int32}
	}
	if countyID.Valid {
		id := countyID.Int32
		g.CountyID = &id
		g.County = &domain.County{ID: id, Name: countyName.String, Abbreviation: countyAbbr.String}
	}

	a := org.Activity
	err = db.QueryRowContext(ctx,
		`SELECT id, area, is_part_of_federation, is_part_of_coalition, is_social_service_viable, offered_services
		 FROM organization_activity WHERE id = $1`, activityID,
	).Scan(&a.ID, &a.Area, &a.IsPartOfFederation, &a.IsPartOfCoalition, &a.IsSocialServiceViable, &a.OfferedServices)
	if err != nil {
		return nil, fmt.Errorf("load organization activity: %w", err)
	}
	domainRows, err := db.QueryContext(ctx,
		`SELECT d.id, d.name FROM domains d
		 JOIN activity_domains ad ON ad.domain_id = d.id
		 WHERE ad.activity_id = $1 ORDER BY d.name`, activityID)
	if err != nil {
		return nil, fmt.Errorf("load activity domains: %w", err)
	}
	defer domainRows.Close()
	for domainRows.Next() {
		var d domain.Domain
		if err := domainRows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		a.Domains = append(a.Domains, d)
		a.DomainIDs = append(a.DomainIDs, d.ID)
	}
	if err := domainRows.Err(); err != nil {
		return nil, err
	}

	l := org.Legal
	err = db.QueryRowContext(ctx,
		`SELECT id, representative_name, representative_email, representative_phone,
		        representative_role, directors_count, others_can_represent, organization_statute
		 FROM organization_legal WHERE id = $1`, legalID,
	).Scan(&l.ID, &l.RepresentativeName, &l.RepresentativeEmail, &l.RepresentativePhone,
		&l.RepresentativeRole, &l.DirectorsCount, &l.OthersCanRepresent, &l.OrganizationStatuteKey)
	if err != nil {
		return nil, fmt.Errorf("load organization legal: %w", err)
	}

	finRows, err := db.QueryContext(ctx,
		`SELECT id, organization_id, type, year, total, number_of_employees, status, synced_anaf
		 FROM organization_financial WHERE organization_id = $1 ORDER BY year DESC, type`, orgID)
	if err != nil {
		return nil, fmt.Errorf("load organization financial: %w", err)
	}
	defer finRows.Close()
	for finRows.Next() {
		var fin domain.OrganizationFinancial
		if err := finRows.Scan(&fin.ID, &fin.OrganizationID, &fin.Type, &fin.Year,
			&fin.Total, &fin.NumberOfEmployees, &fin.Status, &fin.SyncedAnaf); err != nil {
			return nil, err
		}
		org.Financial = append(org.Financial, fin)
	}
	if err := finRows.Err(); err != nil {
		return nil, err
	}

	rep := org.Report
	err = db.QueryRowContext(ctx,
		`SELECT id, reports, partners, investors FROM organization_report WHERE id = $1`, reportID,
	).Scan(&rep.ID, pq.Array(&rep.ReportKeys), pq.Array(&rep.PartnerKeys), pq.Array(&rep.InvestorKeys))
	if err != nil {
		return nil, fmt.Errorf("load organization report: %w", err)
	}

	return org, nil
}
