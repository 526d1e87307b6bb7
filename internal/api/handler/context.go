package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the user id injected by the Auth middleware and
// fast-fails before any service call: a handler reached without a uid means
// the middleware did not run or the token carried no subject.
func ctxIdentity(c echo.Context) (string, error) {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return uid, nil
}
