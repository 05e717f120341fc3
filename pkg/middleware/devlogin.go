package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	DevCookie  = "GARDEN_UID"
	DefaultUID = "U_DEV_DEFAULT"
)

// DevLogin trusts a uid cookie or ?uid= query parameter and falls back to a
// default account. Development only. A uid already set by an earlier
// middleware wins.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UID(c); ok {
				return next(c)
			}
			uid := ""
			if ck, err := c.Cookie(DevCookie); err == nil {
				uid = ck.Value
			}
			if q := c.QueryParam("uid"); uid == "" && q != "" {
				uid = q
			}
			if uid == "" {
				uid = DefaultUID
			}
			c.SetCookie(&http.Cookie{Name: DevCookie, Value: uid, Path: "/", HttpOnly: true})
			c.Set(ctxUID, uid)
			return next(c)
		}
	}
}
