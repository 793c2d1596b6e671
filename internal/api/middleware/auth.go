package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/estatedesk/crm-api/internal/api/metrics"
	"github.com/estatedesk/crm-api/internal/pkg/token"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects subject and role into the echo
// context. Expired and tampered tokens are logged differently but produce the
// same 401 response, so the caller learns nothing beyond "unauthorized".
func Auth(verifier *token.Issuer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					log.Debug().Str("path", c.Path()).Msg("rejected expired token")
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
					log.Warn().Str("path", c.Path()).Msg("rejected invalid token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(CtxUsername, claims.Subject)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
