package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/security"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Auth          *AuthHandler
	Requests      *RequestHandler
	Organizations *OrganizationHandler
	Users         *UserHandler
	Applications  *ApplicationHandler
	Nomenclatures *NomenclatureHandler
	Files         *FileHandler
}

// NewRouter mounts the API. POST /requests, login, nomenclatures and file
// endpoints are public; request administration is restricted to super
// admins, per the original access rules.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	// Requests
	api.HandleFunc("/requests", h.Requests.Create).Methods(http.MethodPost)
	api.HandleFunc("/requests", requireRoles(tokens, h.Requests.List, domain.UserRoleSuperAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", requireRoles(tokens, h.Requests.Get, domain.UserRoleSuperAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}/approve", requireRoles(tokens, h.Requests.Approve, domain.UserRoleSuperAdmin)).Methods(http.MethodPatch)
	api.HandleFunc("/requests/{id}/reject", requireRoles(tokens, h.Requests.Reject, domain.UserRoleSuperAdmin)).Methods(http.MethodPatch)

	// Organizations
	api.HandleFunc("/organizations/{id}", requireRoles(tokens, h.Organizations.Get)).Methods(http.MethodGet)
	api.HandleFunc("/organizations/{id}/general",
		requireRoles(tokens, h.Organizations.UpdateGeneral, domain.UserRoleSuperAdmin, domain.UserRoleAdmin)).Methods(http.MethodPatch)

	// Users
	api.HandleFunc("/users", requireRoles(tokens, h.Users.List, domain.UserRoleSuperAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", requireRoles(tokens, h.Users.Get, domain.UserRoleSuperAdmin)).Methods(http.MethodGet)

	// Applications
	api.HandleFunc("/applications", requireRoles(tokens, h.Applications.Create, domain.UserRoleSuperAdmin)).Methods(http.MethodPost)
	api.HandleFunc("/applications", requireRoles(tokens, h.Applications.List)).Methods(http.MethodGet)
	api.HandleFunc("/applications/{id}", requireRoles(tokens, h.Applications.Get)).Methods(http.MethodGet)
	api.HandleFunc("/applications/{id}", requireRoles(tokens, h.Applications.Update, domain.UserRoleSuperAdmin)).Methods(http.MethodPatch)

	// Nomenclatures
	api.HandleFunc("/nomenclatures/cities", h.Nomenclatures.Cities).Methods(http.MethodGet)
	api.HandleFunc("/nomenclatures/counties", h.Nomenclatures.Counties).Methods(http.MethodGet)
	api.HandleFunc("/nomenclatures/domains", h.Nomenclatures.Domains).Methods(http.MethodGet)

	// Files
	api.HandleFunc("/files/upload/{token}", h.Files.Upload).Methods(http.MethodPut)
	api.HandleFunc("/files/download", h.Files.Download).Methods(http.MethodGet)

	return r
}
