package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatedesk/crm-api/internal/api/metrics"
	"github.com/estatedesk/crm-api/internal/core/domain"
)

// RBAC enforces role-based access control over the typed role injected by
// Auth. A request without a role (Auth not run) is treated as unauthenticated
// rather than forbidden, so the two failure modes map to distinct status codes.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
