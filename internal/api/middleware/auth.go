package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shoplite/shoplite-api/internal/api/metrics"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	// ClaimsKey holds the full *token.Claims.
	ClaimsKey = "claims"
	// RoleKey holds the role string consumed by RBAC.
	RoleKey = "role"
	// UserIDKey holds the authenticated user's id.
	UserIDKey = "user_id"
)

// Auth validates the bearer token and injects typed claims into the context.
// X-Authorization is accepted as a fallback for reverse proxies that rename
// the Authorization header. Clients get one generic 401 regardless of why
// verification failed; the specific cause (expired vs malformed) is logged
// server-side only.
func Auth(codec ports.TokenCodec, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				header = c.Request().Header.Get("X-Authorization")
			}
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				log.Debug().
					Err(err).
					Str("path", c.Path()).
					Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(ClaimsKey, claims)
			c.Set(RoleKey, claims.Role)
			c.Set(UserIDKey, claims.UserID)

			return next(c)
		}
	}
}
