package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"gardenbook/entities"
	"gardenbook/pkg/middleware"
	"gardenbook/pkg/watering/controller"
	repo "gardenbook/pkg/watering/repository"
)

type WateringCtrl struct{ repo repo.WateringRepository }

func New(repo repo.WateringRepository) *WateringCtrl { return &WateringCtrl{repo} }

var _ controller.WateringController = (*WateringCtrl)(nil)

func bad(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func internal(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func (h *WateringCtrl) CreateSource(c echo.Context) error {
	uid, _ := middleware.UID(c)
	var req struct {
		Name        string   `json:"name"`
		SourceType  string   `json:"source_type"`
		FlowRateLPM *float64 `json:"flow_rate_lpm"`
		Notes       string   `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return bad(c, "bad json")
	}
	st, err := entities.ParseSourceType(req.SourceType)
	if err != nil {
		return bad(c, err.Error())
	}
	s := &entities.IrrigationSource{UserID: uid, Name: req.Name, SourceType: st, FlowRateLPM: req.FlowRateLPM, Notes: req.Notes}
	if err := s.Validate(); err != nil {
		return bad(c, err.Error())
	}
	if err := h.repo.CreateSource(c.Request().Context(), s); err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *WateringCtrl) ListSources(c echo.Context) error {
	uid, _ := middleware.UID(c)
	out, err := h.repo.ListSources(c.Request().Context(), uid)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WateringCtrl) CreateZone(c echo.Context) error {
	uid, _ := middleware.UID(c)
	var req struct {
		Name               string `json:"name"`
		IrrigationSourceID *uint  `json:"irrigation_source_id"`
		Method             string `json:"method"`
		Notes              string `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return bad(c, "bad json")
	}
	m, err := entities.ParseIrrigationMethod(req.Method)
	if err != nil {
		return bad(c, err.Error())
	}
	if req.IrrigationSourceID != nil {
		ok, err := h.repo.SourceOwned(c.Request().Context(), *req.IrrigationSourceID, uid)
		if err != nil {
			return internal(c, err)
		}
		if !ok {
			return bad(c, "irrigation source not found")
		}
	}
	z := &entities.IrrigationZone{UserID: uid, Name: req.Name, IrrigationSourceID: req.IrrigationSourceID, Method: m, Notes: req.Notes}
	if err := z.Validate(); err != nil {
		return bad(c, err.Error())
	}
	if err := h.repo.CreateZone(c.Request().Context(), z); err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusCreated, z)
}

func (h *WateringCtrl) ListZones(c echo.Context) error {
	uid, _ := middleware.UID(c)
	out, err := h.repo.ListZones(c.Request().Context(), uid)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WateringCtrl) zone(c echo.Context) (uint, string, bool, error) {
	uid, _ := middleware.UID(c)
	zid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, uid, false, bad(c, "invalid zone id")
	}
	ok, err := h.repo.ZoneOwned(c.Request().Context(), uint(zid), uid)
	if err != nil {
		return 0, uid, false, internal(c, err)
	}
	if !ok {
		return 0, uid, false, c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
	}
	return uint(zid), uid, true, nil
}

func (h *WateringCtrl) CreateEvent(c echo.Context) error {
	zid, uid, ok, err := h.zone(c)
	if !ok {
		return err
	}
	var req struct {
		WateredAt   string   `json:"watered_at"`
		DurationMin *float64 `json:"duration_min"`
		VolumeL     *float64 `json:"volume_l"`
		Notes       string   `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return bad(c, "bad json")
	}
	at := time.Now()
	if req.WateredAt != "" {
		if at, err = time.Parse(time.RFC3339, req.WateredAt); err != nil {
			return bad(c, "watered_at must be RFC 3339")
		}
	}
	e := &entities.WateringEvent{UserID: uid, IrrigationZoneID: zid, WateredAt: at, DurationMin: req.DurationMin, VolumeL: req.VolumeL, Notes: req.Notes}
	if err := e.Validate(); err != nil {
		return bad(c, err.Error())
	}
	if err := h.repo.CreateEvent(c.Request().Context(), e); err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

// ListEvents accepts optional ?from= and ?to= dates (YYYY-MM-DD).
func (h *WateringCtrl) ListEvents(c echo.Context) error {
	zid, uid, ok, err := h.zone(c)
	if !ok {
		return err
	}
	var fromPtr, toPtr *time.Time
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			fromPtr = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			toPtr = &t
		}
	}
	out, err := h.repo.ListEvents(c.Request().Context(), zid, uid, fromPtr, toPtr)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
