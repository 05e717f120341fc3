package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUID is the echo context key every auth middleware sets.
const ctxUID = "uid"

// UID returns the acting user's id, if any middleware resolved one.
func UID(c echo.Context) (string, bool) {
	uid, ok := c.Get(ctxUID).(string)
	return uid, ok && uid != ""
}

// RequireUID rejects requests that reach it without an acting user.
func RequireUID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UID(c); !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
			}
			return next(c)
		}
	}
}
