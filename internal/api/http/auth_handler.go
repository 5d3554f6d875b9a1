package http

import (
	"net/http"

	"orghub-backend/internal/domain"
	"orghub-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var dto loginDTO
	if err := decodeAndValidate(r, &dto); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := h.auth.Login(r.Context(), dto.Email, dto.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			writeJSON(w, http.StatusUnauthorized, errorEnvelope{
				Error: errorBody{Code: service.ErrInvalidCredentials.Code, Message: service.ErrInvalidCredentials.Message},
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, User: user})
}
