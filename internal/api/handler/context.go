package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatedesk/crm-api/internal/api/middleware"
	"github.com/estatedesk/crm-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. Presence
// of a typed role proves the middleware ran; anything else is treated as an
// unauthenticated request.
func ctxClaims(c echo.Context) (username string, role domain.Role, err error) {
	role, ok := c.Get(middleware.CtxRole).(domain.Role)
	if !ok {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get(middleware.CtxUsername).(string)
	if username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}
	return username, role, nil
}
