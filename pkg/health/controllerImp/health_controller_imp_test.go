package controllerImp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"gardenbook/database"
)

func TestHealth(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "h.db"), zerolog.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		ctrl *HealthCtrl
		want int
	}{
		{"database up", NewHealthCtrl(db, "1.2.3"), http.StatusOK},
		{"no database", NewHealthCtrl(nil, "1.2.3"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
			if err := tt.ctrl.Health(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body["version"] != "1.2.3" {
				t.Errorf("version = %v", body["version"])
			}
		})
	}
}
