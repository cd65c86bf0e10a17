package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/delivery/http/middleware"
	"chapterhub/internal/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Email == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthController serves the admin login and logout endpoints.
type AuthController struct {
	Logger *slog.Logger
	Gate   domain.AdminGate
}

func NewAuthController(logger *slog.Logger, gate domain.AdminGate) *AuthController {
	return &AuthController{Logger: logger, Gate: gate}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin credential pair for a bearer token. The session never expires; it ends only on logout.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} helpers.APIResponse "data contains the bearer token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: invalid_credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeInvalidCredentials, "invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "login failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token})
}

// LogoutResponse is the data payload for POST /auth/logout.
type LogoutResponse struct {
	Status string `json:"status"`
}

// Logout godoc
// @Summary Admin logout
// @Description Closes the session the bearer token belongs to. Logging out an already-closed session succeeds.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if err := c.Gate.Logout(r.Context(), token); err != nil {
		c.Logger.ErrorContext(r.Context(), "logout failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LogoutResponse{Status: "logged out"})
}
