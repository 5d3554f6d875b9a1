package domain

import "time"

type OrganizationStatus string

const (
	OrganizationStatusPending    OrganizationStatus = "PENDING"
	OrganizationStatusActive     OrganizationStatus = "ACTIVE"
	OrganizationStatusRestricted OrganizationStatus = "RESTRICTED"
)

type FinancialStatus string

const (
	FinancialStatusNotCompleted FinancialStatus = "NOT_COMPLETED"
	FinancialStatusPending      FinancialStatus = "PENDING"
	FinancialStatusCompleted    FinancialStatus = "COMPLETED"
)

// Organization is the tenant aggregate root. The nested profile entities are
// persisted together with the organization row in one ordered, transactional
// write (see the postgres repository).
type Organization struct {
	ID              int32              `json:"id"`
	Status          OrganizationStatus `json:"status"`
	FinancialStatus FinancialStatus    `json:"financial_status"`
	SyncedOn        *time.Time         `json:"synced_on,omitempty"`
	CreatedOn       time.Time          `json:"created_on"`

	General   *OrganizationGeneral    `json:"general,omitempty"`
	Activity  *OrganizationActivity   `json:"activity,omitempty"`
	Legal     *OrganizationLegal      `json:"legal,omitempty"`
	Financial []OrganizationFinancial `json:"financial,omitempty"`
	Report    *OrganizationReport     `json:"report,omitempty"`
}

type OrganizationGeneral struct {
	ID               int32  `json:"id"`
	Name             string `json:"name"`
	Alias            string `json:"alias"`
	CUI              string `json:"cui"`
	RAFNumber        string `json:"raf_number"`
	YearCreated      int32  `json:"year_created"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	LogoKey          string `json:"logo,omitempty"`
	Address          string `json:"address"`
	CityID           *int32 `json:"city_id,omitempty"`
	CountyID         *int32 `json:"county_id,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Website          string `json:"website"`
	ContactName      string `json:"contact_name"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`

	City   *City   `json:"city,omitempty"`
	County *County `json:"county,omitempty"`
}

type OrganizationActivity struct {
	ID                    int32   `json:"id"`
	Area                  string  `json:"area"`
	IsPartOfFederation    bool    `json:"is_part_of_federation"`
	IsPartOfCoalition     bool    `json:"is_part_of_coalition"`
	IsSocialServiceViable bool    `json:"is_social_service_viable"`
	OfferedServices       string  `json:"offered_services"`
	DomainIDs             []int32 `json:"domain_ids"`

	Domains []Domain `json:"domains,omitempty"`
}

type OrganizationLegal struct {
	ID                     int32  `json:"id"`
	RepresentativeName     string `json:"representative_name"`
	RepresentativeEmail    string `json:"representative_email"`
	RepresentativePhone    string `json:"representative_phone"`
	RepresentativeRole     string `json:"representative_role"`
	DirectorsCount         int32  `json:"directors_count"`
	OthersCanRepresent     bool   `json:"others_can_represent"`
	OrganizationStatuteKey string `json:"organization_statute,omitempty"`
}

// OrganizationFinancial holds one fiscal year of reported income or expense
// data. Rows are provisioned empty by the financial sync job and completed
// later by the organization admin.
type OrganizationFinancial struct {
	ID                int32           `json:"id"`
	OrganizationID    int32           `json:"organization_id"`
	Type              string          `json:"type"` // "INCOME" or "EXPENSE"
	Year              int32           `json:"year"`
	Total             int64           `json:"total"`
	NumberOfEmployees int32           `json:"number_of_employees"`
	Status            FinancialStatus `json:"status"`
	SyncedAnaf        bool            `json:"synced_anaf"`
}

type OrganizationReport struct {
	ID           int32    `json:"id"`
	ReportKeys   []string `json:"reports"`
	PartnerKeys  []string `json:"partners"`
	InvestorKeys []string `json:"investors"`
}
