package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdnotes/notes-api/internal/api/middleware"
)

// ctxUserID extracts the owner id injected by the Auth middleware and
// fast-fails before any service call. A missing id means the guard never
// ran on this route — reject rather than operate unscoped.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
