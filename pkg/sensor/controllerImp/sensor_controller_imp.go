package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gardenbook/entities"
	"gardenbook/pkg/middleware"
	"gardenbook/pkg/sensor/controller"
	repo "gardenbook/pkg/sensor/repository"
)

type SensorCtrl struct {
	repo repo.SensorRepository
	now  func() time.Time
}

func New(repo repo.SensorRepository) *SensorCtrl { return &SensorCtrl{repo: repo, now: time.Now} }

var _ controller.SensorController = (*SensorCtrl)(nil)

type readingReq struct {
	SensorType string  `json:"sensor_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
}

func (h *SensorCtrl) garden(c echo.Context) (uint, string, error) {
	uid, _ := middleware.UID(c)
	gid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, uid, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid garden id"})
	}
	ok, err := h.repo.GardenOwned(c.Request().Context(), uint(gid), uid)
	if err != nil {
		return 0, uid, c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if !ok {
		return 0, uid, c.JSON(http.StatusNotFound, echo.Map{"error": "garden not found"})
	}
	return uint(gid), uid, nil
}

func (h *SensorCtrl) Create(c echo.Context) error {
	gid, uid, err := h.garden(c)
	if gid == 0 {
		return err
	}
	var req readingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	st, err := entities.ParseSensorType(req.SensorType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	at := h.now()
	if req.RecordedAt != "" {
		if at, err = time.Parse(time.RFC3339, req.RecordedAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "recorded_at must be RFC 3339"})
		}
	}
	m := &entities.SensorReading{UserID: uid, GardenID: gid, SensorType: st, Value: req.Value, Unit: req.Unit, RecordedAt: at}
	if err := m.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.repo.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

// List returns the last ?days (default 7) of readings for a garden.
func (h *SensorCtrl) List(c echo.Context) error {
	gid, uid, err := h.garden(c)
	if gid == 0 {
		return err
	}
	days := 7
	if v := c.QueryParam("days"); v != "" {
		if days, err = strconv.Atoi(v); err != nil || days <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid days"})
		}
	}
	out, err := h.repo.Since(c.Request().Context(), gid, uid, h.now().AddDate(0, 0, -days))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
