package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/api/metrics"
	"github.com/ankit1439/mess-portal/internal/api/middleware"
	"github.com/ankit1439/mess-portal/internal/core/domain"
	"github.com/ankit1439/mess-portal/internal/core/ports"
)

// AuthHandler handles admin login, logout, and account management.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expires_in"`
	Admin     *domain.Admin `json:"admin"`
}

// Login handles POST /api/admin/login and issues a fresh bearer session.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.auth.Login(c.Request().Context(), req.Username, req.Password, clientIP(c))
	if err != nil {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn,
		Admin:     res.Admin,
	})
}

// Logout handles POST /api/admin/logout, revoking the presented session.
//
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  acceptedResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, acceptedResponse{Message: "logged out"})
}

// Profile handles GET /api/admin/profile, returning the authenticated admin.
//
// @Summary      Current admin profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.Admin
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// ChangePassword handles POST /api/admin/change-password. On success every
// session of the admin is revoked, including the one making this call.
//
// @Summary      Change admin password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Password change"
// @Success      200   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ChangePassword(c.Request().Context(), admin.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptedResponse{Message: "password changed, please log in again"})
}

type verifyResponse struct {
	Valid bool          `json:"valid"`
	Admin *domain.Admin `json:"admin,omitempty"`
}

// VerifyToken handles POST /api/admin/verify-token. Unlike the protected
// routes it answers 200 for invalid tokens, so frontends can probe a stored
// token without triggering error handling.
//
// @Summary      Verify a bearer token
// @Tags         auth
// @Produce      json
// @Success      200   {object}  verifyResponse
// @Router       /api/admin/verify-token [post]
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return c.JSON(http.StatusOK, verifyResponse{Valid: false})
	}

	admin, err := h.auth.Validate(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusOK, verifyResponse{Valid: false})
	}
	return c.JSON(http.StatusOK, verifyResponse{Valid: true, Admin: admin})
}
