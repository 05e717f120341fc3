package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"gardenbook/database"
	"gardenbook/entities"
	"gardenbook/pkg/exportimport/types"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExportThenImport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "garden.db")
	db, err := database.OpenSQLite(dbPath, zerolog.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	land := entities.Land{UserID: "U1", Name: "Yard", Width: 8, Height: 8}
	if err := db.Create(&land).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&entities.Garden{UserID: "U1", Name: "Herbs", GardenType: entities.GardenContainer, LandID: &land.ID}).Error; err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(dir, "backup.json")
	if _, err := execute(t, "", "export", "--db", dbPath, "--uid", "U1", "-o", file); err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("exported file: %v", err)
	}
	if len(snap.Lands) != 1 || len(snap.Gardens) != 1 {
		t.Fatalf("snapshot = %+v", snap.Counts())
	}

	out, err := execute(t, string(raw), "import", "--db", dbPath, "--uid", "U2", "--mode", "merge")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	var res types.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("import output: %v\n%s", err, out)
	}
	if !res.Success || res.ItemsImported != 2 {
		t.Errorf("result = %+v", res)
	}
	var n int64
	db.Model(&entities.Garden{}).Where("user_id = ?", "U2").Count(&n)
	if n != 1 {
		t.Errorf("U2 has %d gardens", n)
	}
}

func TestPreviewReportsInvalidSnapshot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "garden.db")
	bad := `{"metadata":{"schema_version":"1.0.0"},"trees":[{"id":1,"land_id":4,"species":"Fig"}]}`

	out, err := execute(t, bad, "preview", "--db", dbPath, "--uid", "U1")
	if !errors.Is(err, types.ErrValidationFailed) {
		t.Fatalf("err = %v", err)
	}
	var p types.Preview
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("preview output: %v", err)
	}
	if p.Valid || p.Counts[types.Trees] != 1 {
		t.Errorf("preview = %+v", p)
	}
}

func TestRequiresUID(t *testing.T) {
	if _, err := execute(t, "", "export", "--db", filepath.Join(t.TempDir(), "g.db")); err == nil {
		t.Fatal("export ran without --uid")
	}
}

func TestRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "{}", "import", "--db", filepath.Join(t.TempDir(), "g.db"), "--uid", "U1", "--mode", "replace")
	if !errors.Is(err, types.ErrInvalidMode) {
		t.Fatalf("err = %v", err)
	}
}
