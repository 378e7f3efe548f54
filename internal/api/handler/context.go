package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing or zero user id means the
// middleware did not run (or the token carried no usable identity), which is
// a 401, not a handler bug.
func ctxIdentity(c echo.Context) (userID int64, role string, err error) {
	userID, _ = c.Get(middleware.UserIDKey).(int64)
	role, _ = c.Get(middleware.RoleKey).(string)
	if userID == 0 || role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
