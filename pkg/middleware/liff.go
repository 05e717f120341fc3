package middleware

import (
	"github.com/labstack/echo/v4"
)

// LIFF reads the user id a LINE front end forwards in X-Line-Uid. When
// disabled it passes through untouched so another middleware can decide.
func LIFF(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			if _, ok := UID(c); ok {
				return next(c)
			}
			if uid := c.Request().Header.Get("X-Line-Uid"); uid != "" {
				c.Set(ctxUID, uid)
			}
			return next(c)
		}
	}
}
