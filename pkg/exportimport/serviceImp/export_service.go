package serviceImp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/service"
	"gardenbook/pkg/exportimport/types"
)

type ExportSvc struct {
	store      repository.Store
	appVersion string
	batchSize  int
	now        func() time.Time
	log        zerolog.Logger
}

func NewExportService(store repository.Store, appVersion string, batchSize int, log zerolog.Logger) *ExportSvc {
	return &ExportSvc{
		store:      store,
		appVersion: appVersion,
		batchSize:  batchSize,
		now:        time.Now,
		log:        log.With().Str("component", "export").Logger(),
	}
}

var _ service.ExportService = (*ExportSvc)(nil)

// sink receives a snapshot piece by piece, in dependency order.
type sink interface {
	begin(meta types.Metadata) error
	open(t types.EntityType) error
	item(t types.EntityType, rec any) error
	close(t types.EntityType) error
	finish() error
}

func (s *ExportSvc) Export(ctx context.Context, uid string, opts types.ExportOptions) (*types.Snapshot, error) {
	out := &snapshotSink{}
	if err := s.walk(ctx, uid, opts, out); err != nil {
		return nil, err
	}
	return out.snap, nil
}

func (s *ExportSvc) ExportTo(ctx context.Context, w io.Writer, uid string, opts types.ExportOptions) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if err := s.walk(ctx, uid, opts, &jsonSink{w: bw}); err != nil {
		return err
	}
	return bw.Flush()
}

func (s *ExportSvc) walk(ctx context.Context, uid string, opts types.ExportOptions, out sink) error {
	start := time.Now()
	meta := types.Metadata{
		SchemaVersion:          types.SchemaVersion,
		AppVersion:             s.appVersion,
		ExportedAt:             types.FormatTime(s.now()),
		UserID:                 uid,
		IncludesSensorReadings: opts.IncludeSensorReadings,
	}
	if err := out.begin(meta); err != nil {
		return err
	}
	counts := types.Counts{}
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		for _, t := range types.DependencyOrder {
			if err := out.open(t); err != nil {
				return err
			}
			n, err := s.collect(ctx, tx, uid, t, opts, out)
			if err != nil {
				return err
			}
			counts[t] = n
			if err := out.close(t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("uid", uid).Msg("export failed")
		return fmt.Errorf("export: %w", err)
	}
	if err := out.finish(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.log.Info().
		Str("uid", uid).
		Bool("sensor_readings", opts.IncludeSensorReadings).
		Int("items", counts.Total()).
		Dur("took", time.Since(start)).
		Msg("export complete")
	return nil
}

// emit converts each model with conv and hands it to the sink.
func emit[E any, R any](out sink, t types.EntityType, xs []E, conv func(E) R) (int, error) {
	for _, x := range xs {
		if err := out.item(t, conv(x)); err != nil {
			return 0, err
		}
	}
	return len(xs), nil
}

func (s *ExportSvc) collect(ctx context.Context, tx repository.Store, uid string, t types.EntityType, opts types.ExportOptions, out sink) (int, error) {
	storeErr := func(err error) error { return types.StorageError("list "+string(t), err) }
	switch t {
	case types.Lands:
		xs, err := tx.ListLands(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, landRecord)
	case types.IrrigationSources:
		xs, err := tx.ListIrrigationSources(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, irrigationSourceRecord)
	case types.IrrigationZones:
		xs, err := tx.ListIrrigationZones(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, irrigationZoneRecord)
	case types.Gardens:
		xs, err := tx.ListGardens(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, gardenRecord)
	case types.Trees:
		xs, err := tx.ListTrees(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, treeRecord)
	case types.PlantingEvents:
		xs, err := tx.ListPlantingEvents(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, plantingEventRecord)
	case types.SoilSamples:
		xs, err := tx.ListSoilSamples(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, soilSampleRecord)
	case types.WateringEvents:
		xs, err := tx.ListWateringEvents(ctx, uid)
		if err != nil {
			return 0, storeErr(err)
		}
		return emit(out, t, xs, wateringEventRecord)
	case types.SensorReadings:
		if !opts.IncludeSensorReadings {
			return 0, nil
		}
		total := 0
		err := tx.EachSensorReadingBatch(ctx, uid, s.batchSize, func(batch []entities.SensorReading) error {
			n, err := emit(out, t, batch, sensorReadingRecord)
			total += n
			return err
		})
		if err != nil {
			return 0, types.StorageError("list "+string(t), err)
		}
		return total, nil
	}
	return 0, fmt.Errorf("export: unknown entity type %q", t)
}

// snapshotSink accumulates an in-memory Snapshot.
type snapshotSink struct{ snap *types.Snapshot }

func (k *snapshotSink) begin(meta types.Metadata) error {
	k.snap = types.NewSnapshot(meta)
	return nil
}

func (k *snapshotSink) open(types.EntityType) error  { return nil }
func (k *snapshotSink) close(types.EntityType) error { return nil }
func (k *snapshotSink) finish() error                { return nil }

func (k *snapshotSink) item(_ types.EntityType, rec any) error {
	s := k.snap
	switch r := rec.(type) {
	case types.LandRecord:
		s.Lands = append(s.Lands, r)
	case types.IrrigationSourceRecord:
		s.IrrigationSources = append(s.IrrigationSources, r)
	case types.IrrigationZoneRecord:
		s.IrrigationZones = append(s.IrrigationZones, r)
	case types.GardenRecord:
		s.Gardens = append(s.Gardens, r)
	case types.TreeRecord:
		s.Trees = append(s.Trees, r)
	case types.PlantingEventRecord:
		s.PlantingEvents = append(s.PlantingEvents, r)
	case types.SoilSampleRecord:
		s.SoilSamples = append(s.SoilSamples, r)
	case types.WateringEventRecord:
		s.WateringEvents = append(s.WateringEvents, r)
	case types.SensorReadingRecord:
		s.SensorReadings = append(s.SensorReadings, r)
	default:
		return fmt.Errorf("snapshot: unexpected record %T", rec)
	}
	return nil
}

// jsonSink writes the same document encoding/json would produce for a
// Snapshot, without holding the collections in memory.
type jsonSink struct {
	w     *bufio.Writer
	first bool
}

func (k *jsonSink) raw(s string) error {
	_, err := k.w.WriteString(s)
	return err
}

func (k *jsonSink) value(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = k.w.Write(b)
	return err
}

func (k *jsonSink) begin(meta types.Metadata) error {
	if err := k.raw(`{"metadata":`); err != nil {
		return err
	}
	return k.value(meta)
}

func (k *jsonSink) open(t types.EntityType) error {
	k.first = true
	return k.raw(`,"` + string(t) + `":[`)
}

func (k *jsonSink) item(_ types.EntityType, rec any) error {
	if !k.first {
		if err := k.raw(","); err != nil {
			return err
		}
	}
	k.first = false
	return k.value(rec)
}

func (k *jsonSink) close(types.EntityType) error { return k.raw("]") }
func (k *jsonSink) finish() error                { return k.raw("}\n") }
