package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	api "orghub-backend/internal/api/http"
	"orghub-backend/internal/domain"
	"orghub-backend/internal/repository"
	"orghub-backend/internal/service"
)

const validCreateBody = `{
  "admin": {"name": "Ion Popescu", "email": "ion@verde.ro", "phone": "0712345678"},
  "organization": {
    "general": {
      "name": "Asociatia Verde", "cui": "12345678", "raf_number": "RAF-100", "year_created": 2010,
      "email": "office@verde.ro", "phone": "0712345678",
      "contact_name": "Ion Popescu", "contact_email": "ion@verde.ro", "contact_phone": "0712345678"
    },
    "activity": {"area": "LOCAL", "domain_ids": [1]},
    "legal": {
      "representative_name": "Ion Popescu", "representative_email": "ion@verde.ro",
      "representative_phone": "0712345678"
    }
  }
}`

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return body.Error.Code
}

func TestRequestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		svc.On("Create", mock.Anything, service.AdminContact{
			Name: "Ion Popescu", Email: "ion@verde.ro", Phone: "0712345678",
		}, mock.MatchedBy(func(org *domain.Organization) bool {
			return org.General.Name == "Asociatia Verde" && org.Activity.Area == "LOCAL"
		})).Return(&domain.Request{ID: 5, Status: domain.RequestStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(validCreateBody))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_000", decodeError(t, rec))
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(`{"admin": {"name": "Ion"}}`))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_001", decodeError(t, rec))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrUserExists)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(validCreateBody))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "REQ_001", decodeError(t, rec))
	})
}

func TestRequestHandler_Approve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		svc.On("Approve", mock.Anything, int32(5)).
			Return(&domain.Request{ID: 5, Status: domain.RequestStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/5/approve", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rec := httptest.NewRecorder()
		handler.Approve(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body domain.Request
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, domain.RequestStatusApproved, body.Status)
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		svc.On("Approve", mock.Anything, int32(5)).Return(nil, service.ErrRequestNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/5/approve", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rec := httptest.NewRecorder()
		handler.Approve(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "REQ_003", decodeError(t, rec))
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		svc.On("Approve", mock.Anything, int32(99)).Return(nil, service.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/99/approve", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		rec := httptest.NewRecorder()
		handler.Approve(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		svc := new(MockRequestService)
		handler := api.NewRequestHandler(svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/abc/approve", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()
		handler.Approve(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_002", decodeError(t, rec))
		svc.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
	})
}

func TestRequestHandler_List(t *testing.T) {
	svc := new(MockRequestService)
	handler := api.NewRequestHandler(svc)

	svc.On("FindAll", mock.Anything, mock.MatchedBy(func(f repository.Filters) bool {
		return f.Page == 2 && f.PageSize == 5 && f.Search == "verde"
	})).Return([]domain.Request{{ID: 1}}, int64(6), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests?page=2&pageSize=5&search=verde", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []domain.Request `json:"items"`
		Meta  struct {
			Total int64 `json:"total"`
			Page  int32 `json:"page"`
		} `json:"meta"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, int64(6), body.Meta.Total)
	assert.Equal(t, int32(2), body.Meta.Page)
}
