package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"gardenbook/pkg/exportimport/types"
)

type HealthCtrl struct {
	db      *gorm.DB
	version string
	started time.Time
}

func NewHealthCtrl(db *gorm.DB, version string) *HealthCtrl {
	return &HealthCtrl{db: db, version: version, started: time.Now()}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.pingDB(ctx)
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":         echo.Map{"ok": db.OK},
		"version":        h.version,
		"schema_version": types.SchemaVersion,
		"uptime_sec":     int(time.Since(h.started).Seconds()),
		"checks":         echo.Map{"database": db},
		"time":           time.Now().Format(time.RFC3339),
	})
}
