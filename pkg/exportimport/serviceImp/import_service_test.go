package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/types"
)

func TestRoundTripPreservesTopology(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Tomato")
	src := seedAccount(t, db, "U_SRC", plant.ID)
	seedAccount(t, db, "U_NOISE", plant.ID) // shifts ids so old and new differ

	exp, imp := newServices(store)
	snap, err := exp.Export(ctx, "U_SRC", types.ExportOptions{IncludeSensorReadings: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	res, err := imp.Import(ctx, "U_DST", snap, types.ModeMerge)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !res.Success {
		t.Fatalf("import failed: %s %+v", res.Message, res.Issues)
	}
	if res.ItemsImported != src.total(true) || res.ItemsUpdated != 0 {
		t.Fatalf("imported=%d updated=%d, want %d/0", res.ItemsImported, res.ItemsUpdated, src.total(true))
	}
	want, got := counts(t, store, "U_SRC"), counts(t, store, "U_DST")
	for _, et := range types.DependencyOrder {
		if want[et] != got[et] {
			t.Errorf("%s: got %d, want %d", et, got[et], want[et])
		}
	}

	lands, _ := store.ListLands(ctx, "U_DST")
	sources, _ := store.ListIrrigationSources(ctx, "U_DST")
	zones, _ := store.ListIrrigationZones(ctx, "U_DST")
	gardens, _ := store.ListGardens(ctx, "U_DST")
	trees, _ := store.ListTrees(ctx, "U_DST")
	plantings, _ := store.ListPlantingEvents(ctx, "U_DST")
	soils, _ := store.ListSoilSamples(ctx, "U_DST")
	waterings, _ := store.ListWateringEvents(ctx, "U_DST")

	land, garden := lands[0], gardens[0]
	if land.ID == src.land.ID {
		t.Fatalf("land kept its export-time id %d", land.ID)
	}
	if garden.LandID == nil || *garden.LandID != land.ID {
		t.Errorf("garden.land_id = %v, want %d", garden.LandID, land.ID)
	}
	if garden.IrrigationZoneID == nil || *garden.IrrigationZoneID != zones[0].ID {
		t.Errorf("garden.irrigation_zone_id = %v, want %d", garden.IrrigationZoneID, zones[0].ID)
	}
	if zones[0].IrrigationSourceID == nil || *zones[0].IrrigationSourceID != sources[0].ID {
		t.Errorf("zone.irrigation_source_id = %v, want %d", zones[0].IrrigationSourceID, sources[0].ID)
	}
	if trees[0].LandID != land.ID {
		t.Errorf("tree.land_id = %d, want %d", trees[0].LandID, land.ID)
	}
	if plantings[0].GardenID != garden.ID || plantings[0].PlantID != plant.ID {
		t.Errorf("planting = garden %d plant %d, want %d/%d", plantings[0].GardenID, plantings[0].PlantID, garden.ID, plant.ID)
	}
	if soils[0].GardenID == nil || *soils[0].GardenID != garden.ID ||
		soils[0].PlantingEventID == nil || *soils[0].PlantingEventID != plantings[0].ID {
		t.Errorf("soil sample refs = %v/%v", soils[0].GardenID, soils[0].PlantingEventID)
	}
	if waterings[0].IrrigationZoneID != zones[0].ID {
		t.Errorf("watering.irrigation_zone_id = %d, want %d", waterings[0].IrrigationZoneID, zones[0].ID)
	}
	if got, ok := res.IDMappings.Lookup(types.Lands, src.land.ID); !ok || got != land.ID {
		t.Errorf("id mapping for land = %d,%v want %d", got, ok, land.ID)
	}
	if garden.GardenType != src.garden.GardenType || *garden.Width != *src.garden.Width {
		t.Errorf("garden fields not carried: %+v", garden)
	}
	for _, r := range gardens {
		if r.UserID != "U_DST" {
			t.Errorf("garden %d owned by %q", r.ID, r.UserID)
		}
	}
}

func TestConcreteScenario(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	land := entities.Land{UserID: "U1", Name: "Field", Width: 100, Height: 100}
	mustCreate(t, db, &land)
	garden := entities.Garden{
		UserID: "U1", Name: "Bed", GardenType: entities.GardenOutdoor,
		LandID: &land.ID, X: ptr(10.0), Y: ptr(10.0), Width: ptr(20.0), Height: ptr(20.0),
	}
	mustCreate(t, db, &garden)

	exp, imp := newServices(store)
	snap, err := exp.Export(ctx, "U1", types.ExportOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Lands) != 1 || snap.Lands[0].ID != 1 {
		t.Fatalf("lands = %+v", snap.Lands)
	}
	if len(snap.Gardens) != 1 || snap.Gardens[0].ID != 1 || snap.Gardens[0].LandID == nil || *snap.Gardens[0].LandID != 1 {
		t.Fatalf("gardens = %+v", snap.Gardens)
	}

	res, err := imp.Import(ctx, "U1", emptySnapshot(), types.ModeOverwrite)
	if err != nil || !res.Success {
		t.Fatalf("overwrite with empty snapshot: %v %+v", err, res)
	}
	if res.ItemsDeleted != 2 {
		t.Errorf("items_deleted = %d, want 2", res.ItemsDeleted)
	}
	if c := counts(t, store, "U1"); c.Total() != 0 {
		t.Fatalf("after overwrite: %v", c)
	}

	res, err = imp.Import(ctx, "U1", snap, types.ModeMerge)
	if err != nil || !res.Success {
		t.Fatalf("merge: %v %+v", err, res)
	}
	lands, _ := store.ListLands(ctx, "U1")
	gardens, _ := store.ListGardens(ctx, "U1")
	if len(lands) != 1 || len(gardens) != 1 {
		t.Fatalf("got %d lands, %d gardens", len(lands), len(gardens))
	}
	if gardens[0].LandID == nil || *gardens[0].LandID != lands[0].ID {
		t.Fatalf("garden.land_id = %v, want %d", gardens[0].LandID, lands[0].ID)
	}
	if lands[0].ID == 1 {
		t.Errorf("re-created land reused id 1")
	}
}

func TestDryRunWritesNothing(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Bean")
	seedAccount(t, db, "U1", plant.ID)

	exp, imp := newServices(store)
	snap, err := exp.Export(ctx, "U1", types.ExportOptions{IncludeSensorReadings: true})
	if err != nil {
		t.Fatal(err)
	}
	before := counts(t, store, "U1")
	for _, uid := range []string{"U1", "U2"} {
		res, err := imp.Import(ctx, uid, snap, types.ModeDryRun)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Success || res.ItemsImported != 0 || res.IDMappings != nil {
			t.Errorf("%s: dry run result %+v", uid, res)
		}
		if res.Counts.Total() != before.Total() {
			t.Errorf("%s: would import %d, want %d", uid, res.Counts.Total(), before.Total())
		}
	}
	if after := counts(t, store, "U1"); after.Total() != before.Total() {
		t.Errorf("U1 changed: %v -> %v", before, after)
	}
	if c := counts(t, store, "U2"); c.Total() != 0 {
		t.Errorf("U2 gained records: %v", c)
	}
}

func TestMergeIsAdditive(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Pea")
	f := seedAccount(t, db, "U1", plant.ID)
	before := counts(t, store, "U1")

	exp, imp := newServices(store)
	snap, err := exp.Export(ctx, "U1", types.ExportOptions{IncludeSensorReadings: true})
	if err != nil {
		t.Fatal(err)
	}
	res, err := imp.Import(ctx, "U1", snap, types.ModeMerge)
	if err != nil || !res.Success {
		t.Fatalf("merge: %v %+v", err, res)
	}
	after := counts(t, store, "U1")
	for _, et := range types.DependencyOrder {
		if after[et] != 2*before[et] {
			t.Errorf("%s: %d -> %d, want doubled", et, before[et], after[et])
		}
	}
	gardens, _ := store.ListGardens(ctx, "U1")
	orig := gardens[0]
	if orig.ID != f.garden.ID || orig.Name != f.garden.Name || *orig.LandID != f.land.ID {
		t.Errorf("original garden changed: %+v", orig)
	}
}

func TestOverwriteIsExact(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Leek")
	seedAccount(t, db, "U_SRC", plant.ID)
	seedAccount(t, db, "U_DST", plant.ID)
	mustCreate(t, db, &entities.Land{UserID: "U_DST", Name: "Spare", Width: 5, Height: 5})
	existing := counts(t, store, "U_DST").Total()

	exp, imp := newServices(store)
	snap, err := exp.Export(ctx, "U_SRC", types.ExportOptions{})
	if err != nil {
		t.Fatal(err)
	}

	p, err := imp.Preview(ctx, "U_DST", snap, types.ModeOverwrite)
	if err != nil {
		t.Fatal(err)
	}
	if p.WouldDelete == nil || *p.WouldDelete != existing {
		t.Fatalf("would_delete = %v, want %d", p.WouldDelete, existing)
	}

	res, err := imp.Import(ctx, "U_DST", snap, types.ModeOverwrite)
	if err != nil || !res.Success {
		t.Fatalf("overwrite: %v %+v", err, res)
	}
	if res.ItemsDeleted != existing {
		t.Errorf("items_deleted = %d, want %d", res.ItemsDeleted, existing)
	}
	got := counts(t, store, "U_DST")
	for _, et := range types.DependencyOrder {
		if got[et] != len(snap.Collection(et)) {
			t.Errorf("%s: %d records, want %d", et, got[et], len(snap.Collection(et)))
		}
	}
	if c := counts(t, store, "U_SRC"); c.Total() != 11 {
		t.Errorf("source account touched: %v", c)
	}
}

func TestIntegrityFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Corn")
	seedAccount(t, db, "U1", plant.ID)
	before := counts(t, store, "U1")

	snap := emptySnapshot()
	snap.Lands = append(snap.Lands, types.LandRecord{ID: 1, Name: "Plot", Width: 10, Height: 10})
	snap.PlantingEvents = append(snap.PlantingEvents, types.PlantingEventRecord{
		ID: 1, GardenID: 99, PlantID: plant.ID, PlantedAt: "2024-05-01", Quantity: 2, Status: "planted",
	})

	_, imp := newServices(store)
	for _, mode := range []types.Mode{types.ModeMerge, types.ModeOverwrite} {
		t.Run(string(mode), func(t *testing.T) {
			res, err := imp.Import(ctx, "U1", snap, mode)
			if err != nil {
				t.Fatal(err)
			}
			if res.Success {
				t.Fatal("import succeeded")
			}
			found := false
			for _, is := range res.Issues {
				if is.Kind == types.IssueMissingReference && is.Severity == types.SeverityError && is.Field == "garden_id" {
					found = true
				}
			}
			if !found {
				t.Errorf("missing garden_id issue in %+v", res.Issues)
			}
			if after := counts(t, store, "U1"); after.Total() != before.Total() {
				t.Errorf("counts changed: %v -> %v", before, after)
			}
		})
	}
}

func TestStorageFailureRollsBackOverwrite(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Onion")
	seedAccount(t, db, "U1", plant.ID)
	before := counts(t, store, "U1")

	exp, _ := newServices(store)
	snap, err := exp.Export(ctx, "U1", types.ExportOptions{})
	if err != nil {
		t.Fatal(err)
	}

	imp := NewImportService(&failingStore{Store: store}, zerolog.Nop())
	for _, mode := range []types.Mode{types.ModeMerge, types.ModeOverwrite} {
		res, err := imp.Import(ctx, "U1", snap, mode)
		if !errors.Is(err, types.ErrStorage) || !errors.Is(err, errDiskFull) {
			t.Fatalf("%s: err = %v, want storage failure", mode, err)
		}
		if res != nil {
			t.Errorf("%s: got result %+v alongside error", mode, res)
		}
		after := counts(t, store, "U1")
		for _, et := range types.DependencyOrder {
			if after[et] != before[et] {
				t.Errorf("%s: %s %d -> %d", mode, et, before[et], after[et])
			}
		}
	}
}

func TestImporterAbortsOnUnresolvedRequiredReference(t *testing.T) {
	ctx := context.Background()
	_, store := openTestDB(t)

	snap := emptySnapshot()
	snap.Lands = append(snap.Lands, types.LandRecord{ID: 1, Name: "Plot", Width: 10, Height: 10})
	snap.Trees = append(snap.Trees, types.TreeRecord{ID: 4, LandID: 2, Species: "Fig"})

	err := store.Transaction(ctx, func(tx repository.Store) error {
		return newImporter(tx, "U1").apply(ctx, snap)
	})
	var refErr *types.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("err = %v, want ReferenceError", err)
	}
	if refErr.Entity != types.Trees || refErr.ID != 4 || refErr.Target != types.Lands || refErr.TargetID != 2 {
		t.Errorf("ReferenceError = %+v", refErr)
	}
	if !errors.Is(err, types.ErrReferentialIntegrity) {
		t.Error("ReferenceError does not unwrap to ErrReferentialIntegrity")
	}
	if c := counts(t, store, "U1"); c.Total() != 0 {
		t.Errorf("land survived rollback: %v", c)
	}
}

func TestOptionalReferenceIsCleared(t *testing.T) {
	ctx := context.Background()
	_, store := openTestDB(t)

	snap := emptySnapshot()
	snap.Gardens = append(snap.Gardens, types.GardenRecord{
		ID: 7, Name: "Pots", GardenType: "container", LandID: ptr(uint(3)), IrrigationZoneID: ptr(uint(8)),
	})
	snap.SoilSamples = append(snap.SoilSamples, types.SoilSampleRecord{
		ID: 1, GardenID: ptr(uint(7)), PlantingEventID: ptr(uint(42)), SampledAt: "2024-06-01T09:00:00Z",
	})

	_, imp := newServices(store)
	p, err := imp.Preview(ctx, "U1", snap, types.ModeMerge)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Valid {
		t.Fatalf("optional references should only warn: %+v", p.Issues)
	}
	warnings := 0
	for _, is := range p.Issues {
		if is.Severity == types.SeverityWarning && is.Kind == types.IssueMissingReference {
			warnings++
		}
	}
	if warnings != 3 {
		t.Errorf("got %d missing-reference warnings, want 3: %+v", warnings, p.Issues)
	}

	res, err := imp.Import(ctx, "U1", snap, types.ModeMerge)
	if err != nil || !res.Success {
		t.Fatalf("import: %v %+v", err, res)
	}
	gardens, _ := store.ListGardens(ctx, "U1")
	if gardens[0].LandID != nil || gardens[0].IrrigationZoneID != nil {
		t.Errorf("dangling optional refs kept: %+v", gardens[0])
	}
	soils, _ := store.ListSoilSamples(ctx, "U1")
	if soils[0].GardenID == nil || *soils[0].GardenID != gardens[0].ID || soils[0].PlantingEventID != nil {
		t.Errorf("soil refs = %v/%v", soils[0].GardenID, soils[0].PlantingEventID)
	}
}

func TestPreviewFindings(t *testing.T) {
	ctx := context.Background()
	db, store := openTestDB(t)
	plant := seedPlant(t, db, "Chard")
	_, imp := newServices(store)

	tests := []struct {
		name       string
		build      func(*types.Snapshot)
		valid      bool
		compatible bool
		kind       types.IssueKind
	}{
		{
			name:       "clean",
			build:      func(s *types.Snapshot) { s.Lands = []types.LandRecord{{ID: 1, Name: "A", Width: 1, Height: 1}} },
			valid:      true,
			compatible: true,
		},
		{
			name:       "newer major version warns only",
			build:      func(s *types.Snapshot) { s.Metadata.SchemaVersion = "2.0.0" },
			valid:      true,
			compatible: false,
			kind:       types.IssueSchemaVersion,
		},
		{
			name:       "minor bump is compatible",
			build:      func(s *types.Snapshot) { s.Metadata.SchemaVersion = "1.4.2" },
			valid:      true,
			compatible: true,
		},
		{
			name: "duplicate ids",
			build: func(s *types.Snapshot) {
				s.Lands = []types.LandRecord{{ID: 1, Name: "A", Width: 1, Height: 1}, {ID: 1, Name: "B", Width: 1, Height: 1}}
			},
			compatible: true,
			kind:       types.IssueDuplicateID,
		},
		{
			name:       "zero id",
			build:      func(s *types.Snapshot) { s.Lands = []types.LandRecord{{Name: "A", Width: 1, Height: 1}} },
			compatible: true,
			kind:       types.IssueInvalidID,
		},
		{
			name: "unknown enum",
			build: func(s *types.Snapshot) {
				s.IrrigationSources = []types.IrrigationSourceRecord{{ID: 1, Name: "Tap", SourceType: "fire_hydrant"}}
			},
			compatible: true,
			kind:       types.IssueInvalidField,
		},
		{
			name: "out of range",
			build: func(s *types.Snapshot) {
				s.SoilSamples = []types.SoilSampleRecord{{ID: 1, SampledAt: "2024-01-01", PH: ptr(15.0)}}
			},
			compatible: true,
			kind:       types.IssueInvalidField,
		},
		{
			name: "missing catalog plant",
			build: func(s *types.Snapshot) {
				s.Gardens = []types.GardenRecord{{ID: 1, Name: "G", GardenType: "outdoor"}}
				s.PlantingEvents = []types.PlantingEventRecord{{ID: 1, GardenID: 1, PlantID: plant.ID + 100, PlantedAt: "2024-01-01", Status: "planned"}}
			},
			compatible: true,
			kind:       types.IssueMissingCatalog,
		},
		{
			name: "garden past its land edge",
			build: func(s *types.Snapshot) {
				s.Lands = []types.LandRecord{{ID: 1, Name: "Yard", Width: 10, Height: 10}}
				s.Gardens = []types.GardenRecord{{
					ID: 1, Name: "Wide", GardenType: "outdoor", LandID: ptr(uint(1)),
					X: ptr(8.0), Y: ptr(0.0), Width: ptr(3.0), Height: ptr(1.0),
				}}
			},
			compatible: true,
			kind:       types.IssueInvalidField,
		},
		{
			name: "garden on unknown land is not bounds checked",
			build: func(s *types.Snapshot) {
				s.Gardens = []types.GardenRecord{{
					ID: 1, Name: "Wide", GardenType: "outdoor", LandID: ptr(uint(4)),
					X: ptr(80.0), Y: ptr(0.0), Width: ptr(30.0), Height: ptr(1.0),
				}}
			},
			valid:      true,
			compatible: true,
			kind:       types.IssueMissingReference,
		},
		{
			name:       "v-prefixed version",
			build:      func(s *types.Snapshot) { s.Metadata.SchemaVersion = "v1.2.0" },
			valid:      true,
			compatible: true,
		},
		{
			name: "missing required watering zone",
			build: func(s *types.Snapshot) {
				s.WateringEvents = []types.WateringEventRecord{{ID: 1, IrrigationZoneID: 5, WateredAt: "2024-01-01"}}
			},
			compatible: true,
			kind:       types.IssueMissingReference,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := emptySnapshot()
			tt.build(snap)
			p, err := imp.Preview(ctx, "U1", snap, types.ModeMerge)
			if err != nil {
				t.Fatal(err)
			}
			if p.Valid != tt.valid || p.SchemaCompatible != tt.compatible {
				t.Fatalf("valid=%v compatible=%v, want %v/%v; issues %+v", p.Valid, p.SchemaCompatible, tt.valid, tt.compatible, p.Issues)
			}
			if tt.kind != "" {
				found := false
				for _, is := range p.Issues {
					found = found || is.Kind == tt.kind
				}
				if !found {
					t.Errorf("no %s issue in %+v", tt.kind, p.Issues)
				}
			}
			if p.WouldDelete != nil {
				t.Error("would_delete set outside overwrite mode")
			}
		})
	}
}

func TestImportRejectsUnknownMode(t *testing.T) {
	_, store := openTestDB(t)
	_, imp := newServices(store)
	if _, err := imp.Import(context.Background(), "U1", emptySnapshot(), types.Mode("replace")); !errors.Is(err, types.ErrInvalidMode) {
		t.Fatalf("Import err = %v", err)
	}
	if _, err := imp.Preview(context.Background(), "U1", emptySnapshot(), types.Mode("")); !errors.Is(err, types.ErrInvalidMode) {
		t.Fatalf("Preview err = %v", err)
	}
}

func TestImportIgnoresMetadataOwner(t *testing.T) {
	ctx := context.Background()
	_, store := openTestDB(t)
	snap := emptySnapshot()
	snap.Metadata.UserID = "U_SOMEONE_ELSE"
	snap.Lands = []types.LandRecord{{ID: 3, Name: "Lot", Width: 2, Height: 2}}

	_, imp := newServices(store)
	res, err := imp.Import(ctx, "U_ME", snap, types.ModeMerge)
	if err != nil || !res.Success {
		t.Fatalf("import: %v %+v", err, res)
	}
	if c := counts(t, store, "U_SOMEONE_ELSE"); c.Total() != 0 {
		t.Errorf("records created for metadata owner: %v", c)
	}
	if c := counts(t, store, "U_ME"); c[types.Lands] != 1 {
		t.Errorf("acting user counts = %v", c)
	}
}

func TestImportRejectsGardenOutsideLand(t *testing.T) {
	ctx := context.Background()
	_, store := openTestDB(t)
	snap := emptySnapshot()
	snap.Lands = []types.LandRecord{{ID: 1, Name: "Yard", Width: 10, Height: 10}}
	snap.Gardens = []types.GardenRecord{{
		ID: 1, Name: "Wide", GardenType: "outdoor", LandID: ptr(uint(1)),
		X: ptr(8.0), Y: ptr(0.0), Width: ptr(3.0), Height: ptr(1.0),
	}}

	_, imp := newServices(store)
	res, err := imp.Import(ctx, "U1", snap, types.ModeMerge)
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Fatal("garden wider than its land was imported")
	}
	if c := counts(t, store, "U1"); c.Total() != 0 {
		t.Errorf("records written: %v", c)
	}

	// The importer holds the same line when handed the snapshot directly.
	err = store.Transaction(ctx, func(tx repository.Store) error {
		return newImporter(tx, "U1").apply(ctx, snap)
	})
	var fe *entities.FieldError
	if !errors.As(err, &fe) || fe.Field != "x" {
		t.Fatalf("apply err = %v, want placement FieldError", err)
	}
	if c := counts(t, store, "U1"); c.Total() != 0 {
		t.Errorf("land survived rollback: %v", c)
	}
}

func TestResultCountsListEveryType(t *testing.T) {
	_, store := openTestDB(t)
	snap := emptySnapshot()
	snap.Lands = []types.LandRecord{{ID: 1, Name: "Yard", Width: 2, Height: 2}}

	_, imp := newServices(store)
	res, err := imp.Import(context.Background(), "U1", snap, types.ModeMerge)
	if err != nil || !res.Success {
		t.Fatalf("import: %v %+v", err, res)
	}
	for _, et := range types.DependencyOrder {
		if _, ok := res.Counts[et]; !ok {
			t.Errorf("counts lack %s: %v", et, res.Counts)
		}
	}
	if res.Counts[types.Lands] != 1 || res.Counts.Total() != 1 {
		t.Errorf("counts = %v", res.Counts)
	}
}

func TestSchemaCompatible(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{types.SchemaVersion, true},
		{"1.9.3", true},
		{"v1.0.0", true},
		{"2.0.0", false},
		{"v0.9.0", false},
		{"", false},
		{"one", false},
	}
	for _, tt := range tests {
		if got := SchemaCompatible(tt.in); got != tt.want {
			t.Errorf("SchemaCompatible(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
