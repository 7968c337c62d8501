package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the identity claims injected by the Auth middleware.
// A missing id means the middleware did not run on this route; reject
// before any service call.
func ctxActor(c echo.Context) (userID int64, role string, err error) {
	userID, ok := c.Get("user_id").(int64)
	if !ok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}
