package serviceImp

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"gardenbook/database"
	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/repositoryImp"
	"gardenbook/pkg/exportimport/types"
)

func ptr[T any](v T) *T { return &v }

func openTestDB(t *testing.T) (*gorm.DB, repository.Store) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "garden.db"), zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db, repositoryImp.New(db)
}

func seedPlant(t *testing.T, db *gorm.DB, name string) entities.Plant {
	t.Helper()
	p := entities.Plant{CommonName: name}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed plant: %v", err)
	}
	return p
}

// fixture is one account holding a record of every type.
type fixture struct {
	land     entities.Land
	source   entities.IrrigationSource
	zone     entities.IrrigationZone
	garden   entities.Garden
	tree     entities.Tree
	planting entities.PlantingEvent
	soil     entities.SoilSample
	watering entities.WateringEvent
	readings []entities.SensorReading
}

func (f *fixture) total(withReadings bool) int {
	n := 8
	if withReadings {
		n += len(f.readings)
	}
	return n
}

func mustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func seedAccount(t *testing.T, db *gorm.DB, uid string, plantID uint) *fixture {
	t.Helper()
	day := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	f := &fixture{}

	f.land = entities.Land{UserID: uid, Name: "Back yard", Width: 30, Height: 20}
	mustCreate(t, db, &f.land)
	f.source = entities.IrrigationSource{UserID: uid, Name: "Rain barrel", SourceType: entities.SourceRainBarrel, FlowRateLPM: ptr(12.5)}
	mustCreate(t, db, &f.source)
	f.zone = entities.IrrigationZone{UserID: uid, Name: "Beds", IrrigationSourceID: &f.source.ID, Method: entities.MethodDrip}
	mustCreate(t, db, &f.zone)
	f.garden = entities.Garden{
		UserID: uid, Name: "Veg bed", GardenType: entities.GardenRaisedBed,
		LandID: &f.land.ID, X: ptr(1.0), Y: ptr(2.0), Width: ptr(4.0), Height: ptr(1.2),
		IrrigationZoneID: &f.zone.ID,
	}
	mustCreate(t, db, &f.garden)
	f.tree = entities.Tree{UserID: uid, LandID: f.land.ID, Species: "Apple", X: 20, Y: 15, CanopyRadiusM: ptr(2.5)}
	mustCreate(t, db, &f.tree)
	f.planting = entities.PlantingEvent{UserID: uid, GardenID: f.garden.ID, PlantID: plantID, PlantedAt: day, Quantity: 6, Status: entities.StatusGrowing}
	mustCreate(t, db, &f.planting)
	f.soil = entities.SoilSample{UserID: uid, GardenID: &f.garden.ID, PlantingEventID: &f.planting.ID, SampledAt: day, PH: ptr(6.5)}
	mustCreate(t, db, &f.soil)
	f.watering = entities.WateringEvent{UserID: uid, IrrigationZoneID: f.zone.ID, WateredAt: day.Add(2 * time.Hour), DurationMin: ptr(15.0)}
	mustCreate(t, db, &f.watering)
	for i := 0; i < 3; i++ {
		r := entities.SensorReading{UserID: uid, GardenID: f.garden.ID, SensorType: entities.SensorSoilMoisture, Value: 30 + float64(i), Unit: "%", RecordedAt: day.Add(time.Duration(i) * time.Hour)}
		mustCreate(t, db, &r)
		f.readings = append(f.readings, r)
	}
	return f
}

func counts(t *testing.T, store repository.Store, uid string) types.Counts {
	t.Helper()
	c, err := store.CountOwned(context.Background(), uid)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return c
}

func newServices(store repository.Store) (*ExportSvc, *ImportSvc) {
	return NewExportService(store, "test", 2, zerolog.Nop()), NewImportService(store, zerolog.Nop())
}

func emptySnapshot() *types.Snapshot {
	return types.NewSnapshot(types.Metadata{SchemaVersion: types.SchemaVersion})
}

// failingStore fails every watering event insert. Everything else reaches
// the real store.
type failingStore struct {
	repository.Store
}

var errDiskFull = errors.New("disk full")

func (f *failingStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return f.Store.Transaction(ctx, func(tx repository.Store) error {
		return fn(&failingStore{Store: tx})
	})
}

func (f *failingStore) CreateWateringEvent(context.Context, *entities.WateringEvent) error {
	return errDiskFull
}
