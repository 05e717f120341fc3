package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gardenbook/pkg/auth/controller"
	"gardenbook/pkg/auth/service"
	"gardenbook/pkg/middleware"
)

type authCtrl struct {
	s   service.AuthService
	dev bool
}

func NewAuthController(s service.AuthService, devLogin bool) controller.AuthController {
	return &authCtrl{s: s, dev: devLogin}
}

type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	u, err := h.s.Register(c.Request().Context(), req.Email, req.Password, req.DisplayName)
	if errors.Is(err, service.ErrEmailTaken) {
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"uid": u.UID, "display_name": u.DisplayName})
}

func (h *authCtrl) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	tok, u, err := h.s.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrBadCredentials) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": tok, "uid": u.UID})
}

// DevLogin sets the development uid cookie. It is a 404 unless dev login
// is enabled.
func (h *authCtrl) DevLogin(c echo.Context) error {
	if !h.dev {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: middleware.DevCookie, Value: uid, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := middleware.UID(c)
	return c.JSON(http.StatusOK, echo.Map{"uid": uid})
}
