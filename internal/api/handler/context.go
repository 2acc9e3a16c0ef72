package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ankit1439/mess-portal/internal/core/domain"
)

// ctxAdmin extracts the admin principal injected by the Auth middleware.
// Presence proves the middleware ran; absence on a protected route is a
// wiring bug, answered with 401 rather than a panic.
func ctxAdmin(c echo.Context) (*domain.Admin, error) {
	admin, ok := c.Get("admin").(*domain.Admin)
	if !ok || admin == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return admin, nil
}

// ctxToken extracts the raw bearer token the Auth middleware validated.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return token, nil
}

// clientIP and userAgent feed identity derivation; both come straight from
// the request.
func clientIP(c echo.Context) string {
	return c.RealIP()
}

func userAgent(c echo.Context) string {
	return c.Request().UserAgent()
}
