package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/service"
)

type ApplicationHandler struct {
	apps service.ApplicationService
}

func NewApplicationHandler(apps service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

type applicationDTO struct {
	Name             string   `json:"name" validate:"required"`
	Type             string   `json:"type" validate:"required,oneof=INDEPENDENT STANDALONE SIMPLE"`
	LoginLink        string   `json:"login_link" validate:"omitempty,url"`
	Website          string   `json:"website" validate:"omitempty,url"`
	Logo             string   `json:"logo"`
	ShortDescription string   `json:"short_description" validate:"required"`
	Description      string   `json:"description"`
	Steps            []string `json:"steps"`
}

func (d applicationDTO) toDomain() *domain.Application {
	return &domain.Application{
		Name:             d.Name,
		Type:             domain.ApplicationType(d.Type),
		LoginLink:        d.LoginLink,
		Website:          d.Website,
		LogoKey:          d.Logo,
		ShortDescription: d.ShortDescription,
		Description:      d.Description,
		Steps:            d.Steps,
	}
}

// Create handles POST /applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto applicationDTO
	if err := decodeAndValidate(r, &dto); err != nil {
		writeError(w, err)
		return
	}
	app, err := h.apps.Create(r.Context(), dto.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// List handles GET /applications.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	f := parseFilters(r)
	apps, total, err := h.apps.FindAll(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, apps, total, f)
}

// Get handles GET /applications/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	app, err := h.apps.FindOne(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// Update handles PATCH /applications/{id}.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	var dto applicationDTO
	if err := decodeAndValidate(r, &dto); err != nil {
		writeError(w, err)
		return
	}
	app := dto.toDomain()
	app.ID = id
	updated, err := h.apps.Update(r.Context(), app)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
