package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"gardenbook/pkg/exportimport/controller"
	"gardenbook/pkg/exportimport/service"
	"gardenbook/pkg/exportimport/types"
	"gardenbook/pkg/middleware"
)

type ExportImportCtrl struct {
	exp   service.ExportService
	imp   service.ImportService
	locks *accountLocks
	log   zerolog.Logger
}

func New(exp service.ExportService, imp service.ImportService, log zerolog.Logger) *ExportImportCtrl {
	return &ExportImportCtrl{
		exp:   exp,
		imp:   imp,
		locks: newAccountLocks(),
		log:   log.With().Str("component", "exportimport_http").Logger(),
	}
}

var _ controller.ExportImportController = (*ExportImportCtrl)(nil)

type importReq struct {
	Mode string          `json:"mode"`
	Data *types.Snapshot `json:"data"`
}

// Export streams the caller's snapshot. Errors before the first byte is
// flushed become a JSON 500; later ones can only abort the stream.
func (h *ExportImportCtrl) Export(c echo.Context) error {
	uid, ok := middleware.UID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	opts := types.ExportOptions{}
	if v := c.QueryParam("include_sensor_readings"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "include_sensor_readings must be a boolean"})
		}
		opts.IncludeSensorReadings = b
	}

	defer h.locks.read(uid)()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	resp.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="gardenbook-export-%s.json"`, time.Now().UTC().Format("20060102-150405")))

	// echo.Response commits a 200 on its first Write.
	err := h.exp.ExportTo(c.Request().Context(), resp, uid, opts)
	if err == nil {
		return nil
	}
	h.log.Error().Err(err).Str("uid", uid).Msg("export")
	if resp.Committed {
		return nil
	}
	resp.Header().Del(echo.HeaderContentDisposition)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
}

func (h *ExportImportCtrl) Preview(c echo.Context) error {
	uid, ok := middleware.UID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	mode, err := types.ParseMode(c.QueryParam("mode"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var snap types.Snapshot
	if err := c.Bind(&snap); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid snapshot json"})
	}

	defer h.locks.read(uid)()

	p, err := h.imp.Preview(c.Request().Context(), uid, &snap, mode)
	if err != nil {
		h.log.Error().Err(err).Str("uid", uid).Msg("preview")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "preview failed"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ExportImportCtrl) Import(c echo.Context) error {
	uid, ok := middleware.UID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}
	var req importReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	mode, err := types.ParseMode(req.Mode)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "data is required"})
	}

	defer h.locks.write(uid)()

	res, err := h.imp.Import(c.Request().Context(), uid, req.Data, mode)
	switch {
	case errors.Is(err, types.ErrInvalidMode):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		h.log.Error().Err(err).Str("uid", uid).Str("mode", string(mode)).Msg("import")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "import failed"})
	case !res.Success:
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusOK, res)
}
