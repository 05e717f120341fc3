package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/garden/controller"
	"gardenbook/pkg/garden/service"
	"gardenbook/pkg/middleware"
)

type GardenCtrl struct{ s service.GardenService }

func New(s service.GardenService) *GardenCtrl { return &GardenCtrl{s} }

var _ controller.GardenController = (*GardenCtrl)(nil)

type landReq struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Notes  string  `json:"notes"`
}

type gardenReq struct {
	Name             string   `json:"name"`
	GardenType       string   `json:"garden_type"`
	LandID           *uint    `json:"land_id"`
	X                *float64 `json:"x"`
	Y                *float64 `json:"y"`
	Width            *float64 `json:"width"`
	Height           *float64 `json:"height"`
	IrrigationZoneID *uint    `json:"irrigation_zone_id"`
	Notes            string   `json:"notes"`
}

// writeErr maps service errors onto status codes.
func writeErr(c echo.Context, err error) error {
	var fe *entities.FieldError
	switch {
	case errors.As(err, &fe):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "field": fe.Field})
	case errors.Is(err, service.ErrNotOwned):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func (h *GardenCtrl) CreateLand(c echo.Context) error {
	uid, _ := middleware.UID(c)
	var req landReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	l, err := h.s.CreateLand(c.Request().Context(), uid, &entities.Land{Name: req.Name, Width: req.Width, Height: req.Height, Notes: req.Notes})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *GardenCtrl) ListLands(c echo.Context) error {
	uid, _ := middleware.UID(c)
	out, err := h.s.ListLands(c.Request().Context(), uid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GardenCtrl) Create(c echo.Context) error {
	uid, _ := middleware.UID(c)
	var req gardenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	gt := entities.GardenOutdoor
	if req.GardenType != "" {
		var err error
		if gt, err = entities.ParseGardenType(req.GardenType); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "field": "garden_type"})
		}
	}
	g := &entities.Garden{
		Name:             req.Name,
		GardenType:       gt,
		LandID:           req.LandID,
		X:                req.X,
		Y:                req.Y,
		Width:            req.Width,
		Height:           req.Height,
		IrrigationZoneID: req.IrrigationZoneID,
		Notes:            req.Notes,
	}
	out, err := h.s.CreateGarden(c.Request().Context(), uid, g)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *GardenCtrl) Get(c echo.Context) error {
	uid, _ := middleware.UID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, err := h.s.GetGarden(c.Request().Context(), uint(id), uid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GardenCtrl) List(c echo.Context) error {
	uid, _ := middleware.UID(c)
	out, err := h.s.ListGardens(c.Request().Context(), uid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
