package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"orghub-backend/internal/logger"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/service"
)

// validate holds the shared validator instance for request DTOs.
var validate = validator.New()

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type pageMeta struct {
	Total    int64 `json:"total"`
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

type pageEnvelope struct {
	Items interface{} `json:"items"`
	Meta  pageMeta    `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writePage(w http.ResponseWriter, items interface{}, total int64, f repository.Filters) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	writeJSON(w, http.StatusOK, pageEnvelope{
		Items: items,
		Meta:  pageMeta{Total: total, Page: page, PageSize: f.Limit()},
	})
}

// writeError maps service errors onto the stable error envelope. Unknown
// errors become opaque 500s; their detail stays in the log.
func writeError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		switch svcErr.Kind {
		case service.KindValidation, service.KindState:
			status = http.StatusBadRequest
		case service.KindNotFound:
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorEnvelope{Error: errorBody{Code: svcErr.Code, Message: svcErr.Message}})
		return
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Error: errorBody{Code: "VAL_001", Message: valErrs.Error()},
		})
		return
	}

	logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Error: errorBody{Code: "INTERNAL", Message: "Internal server error."},
	})
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// decodeAndValidate decodes the JSON body into dst and runs the declarative
// struct validation.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.NewValidationError("VAL_000", "Malformed JSON body.")
	}
	return validate.Struct(dst)
}

// pathID extracts a positive integer id from a mux path variable.
func pathID(value string) (int32, error) {
	id, err := strconv.ParseInt(value, 10, 32)
	if err != nil || id <= 0 {
		return 0, service.NewValidationError("VAL_002", "Invalid id.")
	}
	return int32(id), nil
}

// parseFilters reads the pagination/sort/search query parameters. Unknown
// sort columns are resolved against the per-entity allowlist downstream.
func parseFilters(r *http.Request) repository.Filters {
	q := r.URL.Query()
	f := repository.Filters{
		SortBy: q.Get("sortBy"),
		Search: q.Get("search"),
	}
	if page, err := strconv.ParseInt(q.Get("page"), 10, 32); err == nil {
		f.Page = int32(page)
	}
	if size, err := strconv.ParseInt(q.Get("pageSize"), 10, 32); err == nil {
		f.PageSize = int32(size)
	}
	switch q.Get("order") {
	case "ASC", "asc":
		f.Order = repository.OrderAscending
	case "DESC", "desc":
		f.Order = repository.OrderDescending
	}
	return f
}
