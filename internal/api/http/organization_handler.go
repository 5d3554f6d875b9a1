package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/service"
)

type OrganizationHandler struct {
	orgs  service.OrganizationService
	users service.UserService
}

func NewOrganizationHandler(orgs service.OrganizationService, users service.UserService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs, users: users}
}

type generalDTO struct {
	Name             string `json:"name" validate:"required"`
	Alias            string `json:"alias"`
	CUI              string `json:"cui" validate:"required,min=2,max=10"`
	RAFNumber        string `json:"raf_number" validate:"required"`
	YearCreated      int32  `json:"year_created" validate:"required,gte=1800"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	Logo             string `json:"logo"`
	Address          string `json:"address"`
	CityID           *int32 `json:"city_id"`
	CountyID         *int32 `json:"county_id"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,min=10,max=15"`
	Website          string `json:"website"`
	ContactName      string `json:"contact_name" validate:"required"`
	ContactEmail     string `json:"contact_email" validate:"required,email"`
	ContactPhone     string `json:"contact_phone" validate:"required,min=10,max=15"`
}

type activityDTO struct {
	Area                  string  `json:"area" validate:"required,oneof=LOCAL REGIONAL NATIONAL INTERNATIONAL"`
	IsPartOfFederation    bool    `json:"is_part_of_federation"`
	IsPartOfCoalition     bool    `json:"is_part_of_coalition"`
	IsSocialServiceViable bool    `json:"is_social_service_viable"`
	OfferedServices       string  `json:"offered_services"`
	DomainIDs             []int32 `json:"domain_ids" validate:"required,min=1"`
}

type legalDTO struct {
	RepresentativeName  string `json:"representative_name" validate:"required"`
	RepresentativeEmail string `json:"representative_email" validate:"required,email"`
	RepresentativePhone string `json:"representative_phone" validate:"required,min=10,max=15"`
	RepresentativeRole  string `json:"representative_role"`
	DirectorsCount      int32  `json:"directors_count" validate:"gte=0"`
	OthersCanRepresent  bool   `json:"others_can_represent"`
	OrganizationStatute string `json:"organization_statute"`
}

type reportDTO struct {
	Reports   []string `json:"reports"`
	Partners  []string `json:"partners"`
	Investors []string `json:"investors"`
}

type organizationDTO struct {
	General  generalDTO  `json:"general" validate:"required"`
	Activity activityDTO `json:"activity" validate:"required"`
	Legal    legalDTO    `json:"legal" validate:"required"`
	Report   *reportDTO  `json:"report"`
}

func (d generalDTO) toDomain() *domain.OrganizationGeneral {
	return &domain.OrganizationGeneral{
		Name:             d.Name,
		Alias:            d.Alias,
		CUI:              d.CUI,
		RAFNumber:        d.RAFNumber,
		YearCreated:      d.YearCreated,
		ShortDescription: d.ShortDescription,
		Description:      d.Description,
		LogoKey:          d.Logo,
		Address:          d.Address,
		CityID:           d.CityID,
		CountyID:         d.CountyID,
		Email:            d.Email,
		Phone:            d.Phone,
		Website:          d.Website,
		ContactName:      d.ContactName,
		ContactEmail:     d.ContactEmail,
		ContactPhone:     d.ContactPhone,
	}
}

func (d organizationDTO) toDomain() *domain.Organization {
	org := &domain.Organization{
		General: d.General.toDomain(),
		Activity: &domain.OrganizationActivity{
			Area:                  d.Activity.Area,
			IsPartOfFederation:    d.Activity.IsPartOfFederation,
			IsPartOfCoalition:     d.Activity.IsPartOfCoalition,
			IsSocialServiceViable: d.Activity.IsSocialServiceViable,
			OfferedServices:       d.Activity.OfferedServices,
			DomainIDs:             d.Activity.DomainIDs,
		},
		Legal: &domain.OrganizationLegal{
			RepresentativeName:     d.Legal.RepresentativeName,
			RepresentativeEmail:    d.Legal.RepresentativeEmail,
			RepresentativePhone:    d.Legal.RepresentativePhone,
			RepresentativeRole:     d.Legal.RepresentativeRole,
			DirectorsCount:         d.Legal.DirectorsCount,
			OthersCanRepresent:     d.Legal.OthersCanRepresent,
			OrganizationStatuteKey: d.Legal.OrganizationStatute,
		},
	}
	if d.Report != nil {
		org.Report = &domain.OrganizationReport{
			ReportKeys:   d.Report.Reports,
			PartnerKeys:  d.Report.Partners,
			InvestorKeys: d.Report.Investors,
		}
	}
	return org
}

// Get handles GET /organizations/{id} with the full profile graph.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	org, err := h.orgs.FindOne(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

// UpdateGeneral handles PATCH /organizations/{id}/general. Super admins can
// edit any organization; admins only their own.
func (h *OrganizationHandler) UpdateGeneral(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	claims, ok := ClaimsFromContext(r.Context())
	if ok && claims.Role == string(domain.UserRoleAdmin) {
		caller, err := h.users.FindOne(r.Context(), claims.UserID)
		if err != nil || caller.OrganizationID == nil || *caller.OrganizationID != id {
			writeJSON(w, http.StatusForbidden, errorEnvelope{
				Error: errorBody{Code: "AUTH_403", Message: "You can only edit your own organization."},
			})
			return
		}
	}

	var dto generalDTO
	if err := decodeAndValidate(r, &dto); err != nil {
		writeError(w, err)
		return
	}

	general, err := h.orgs.UpdateGeneral(r.Context(), id, dto.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, general)
}
