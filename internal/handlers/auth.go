package handlers

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// Logouter revokes tokens.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// PasswordResetter changes user passwords.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (*models.UserDB, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := svc.Login(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewLogoutHandler returns an HTTP handler revoking the caller's token.
// @Summary User logout
// @Description Blacklists the presented JWT token
// @Tags auth
// @Produce json
// @Success 200 {object} models.LogoutResponse
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Router /auth/logout [get]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokenGetter func(ctx context.Context) (string, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := tokenGetter(r.Context())
		if !ok || token == "" {
			writeJSON(w, http.StatusForbidden, models.ErrorResponse{Reason: services.ReasonAuthenticatedOnly})
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LogoutResponse{Status: "logout"})
	}
}

// NewResetPasswordHandler returns an HTTP handler changing a user's password.
// @Summary Reset password
// @Description Replaces the password of a user who knows the current one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]string "Weak or mismatching password"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /auth/reset_password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.ResetPassword(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.UserResponse{ID: user.ID, Username: user.Username})
	}
}

// RegisterAuthHandlers registers the auth routes. requireAuth guards logout.
func RegisterAuthHandlers(r chi.Router, login, logout, resetPassword http.HandlerFunc, requireAuth func(http.Handler) http.Handler) {
	r.Post("/auth/login", login)
	r.Post("/auth/reset_password", resetPassword)
	r.With(requireAuth).Get("/auth/logout", logout)
}
