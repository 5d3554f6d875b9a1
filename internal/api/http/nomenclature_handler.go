package http

import (
	"net/http"
	"strconv"

	"orghub-backend/internal/service"
)

type NomenclatureHandler struct {
	nomenclatures service.NomenclatureService
}

func NewNomenclatureHandler(nomenclatures service.NomenclatureService) *NomenclatureHandler {
	return &NomenclatureHandler{nomenclatures: nomenclatures}
}

// Cities handles GET /nomenclatures/cities?countyId=&search=.
func (h *NomenclatureHandler) Cities(w http.ResponseWriter, r *http.Request) {
	var countyID int32
	if raw := r.URL.Query().Get("countyId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeBadRequest(w, "VAL_002", "Invalid countyId.")
			return
		}
		countyID = int32(parsed)
	}

	cities, err := h.nomenclatures.Cities(r.Context(), countyID, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// Counties handles GET /nomenclatures/counties.
func (h *NomenclatureHandler) Counties(w http.ResponseWriter, r *http.Request) {
	counties, err := h.nomenclatures.Counties(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counties)
}

// Domains handles GET /nomenclatures/domains.
func (h *NomenclatureHandler) Domains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.nomenclatures.Domains(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domains)
}
