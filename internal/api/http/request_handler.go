package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"orghub-backend/internal/service"
)

// RequestHandler exposes the organization-creation request workflow.
type RequestHandler struct {
	requests service.RequestService
}

func NewRequestHandler(requests service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type adminDTO struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

type createRequestDTO struct {
	Admin        adminDTO        `json:"admin" validate:"required"`
	Organization organizationDTO `json:"organization" validate:"required"`
}

// Create handles POST /requests. It is the only public write endpoint.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createRequestDTO
	if err := decodeAndValidate(r, &dto); err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requests.Create(r.Context(), service.AdminContact{
		Name:  dto.Admin.Name,
		Email: dto.Admin.Email,
		Phone: dto.Admin.Phone,
	}, dto.Organization.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// List handles GET /requests, returning the PENDING page.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	f := parseFilters(r)
	reqs, total, err := h.requests.FindAll(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, reqs, total, f)
}

// Get handles GET /requests/{id} with the full nested organization graph.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requests.FindOne(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// Approve handles PATCH /requests/{id}/approve.
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requests.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// Reject handles PATCH /requests/{id}/reject.
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := h.requests.Reject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
