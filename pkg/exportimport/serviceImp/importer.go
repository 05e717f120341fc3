package serviceImp

import (
	"context"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/types"
)

// importer creates the records of one snapshot for one user. It must run
// inside a transaction: on error the caller rolls back whatever it wrote.
type importer struct {
	tx      repository.Store
	uid     string
	ids     types.IDMap
	created types.Counts
	lands   map[uint]*entities.Land // by new id
}

func newImporter(tx repository.Store, uid string) *importer {
	created := types.Counts{}
	for _, t := range types.DependencyOrder {
		created[t] = 0
	}
	return &importer{tx: tx, uid: uid, ids: types.NewIDMap(), created: created, lands: map[uint]*entities.Land{}}
}

// required resolves a mandatory reference or fails the run.
func (im *importer) required(e types.Edge, from, ref uint) (uint, error) {
	if id, ok := im.ids.Lookup(e.To, ref); ok {
		return id, nil
	}
	return 0, &types.ReferenceError{Entity: e.From, ID: from, Field: e.Field, Target: e.To, TargetID: ref}
}

// optional resolves a nullable reference; anything unresolved becomes nil.
func (im *importer) optional(e types.Edge, ref *uint) *uint {
	if ref == nil {
		return nil
	}
	id, ok := im.ids.Lookup(e.To, *ref)
	if !ok {
		return nil
	}
	return &id
}

func (im *importer) record(t types.EntityType, old, new uint) error {
	if err := im.ids.Put(t, old, new); err != nil {
		return err
	}
	im.created[t]++
	return nil
}

func (im *importer) apply(ctx context.Context, snap *types.Snapshot) error {
	for _, t := range types.DependencyOrder {
		if err := im.applyType(ctx, snap, t); err != nil {
			return err
		}
	}
	return nil
}

func (im *importer) applyType(ctx context.Context, snap *types.Snapshot, t types.EntityType) error {
	fail := func(err error) error { return types.StorageError("create "+string(t), err) }
	switch t {
	case types.Lands:
		for _, r := range snap.Lands {
			e, err := landEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			if err := im.tx.CreateLand(ctx, e); err != nil {
				return fail(err)
			}
			im.lands[e.ID] = e
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.IrrigationSources:
		for _, r := range snap.IrrigationSources {
			e, err := irrigationSourceEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			if err := im.tx.CreateIrrigationSource(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.IrrigationZones:
		for _, r := range snap.IrrigationZones {
			e, err := irrigationZoneEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			e.IrrigationSourceID = im.optional(types.ZoneSource, r.IrrigationSourceID)
			if err := im.tx.CreateIrrigationZone(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.Gardens:
		for _, r := range snap.Gardens {
			e, err := gardenEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			e.LandID = im.optional(types.GardenLand, r.LandID)
			e.IrrigationZoneID = im.optional(types.GardenZone, r.IrrigationZoneID)
			if e.LandID != nil {
				if err := e.FitsOn(im.lands[*e.LandID]); err != nil {
					return err
				}
			}
			if err := im.tx.CreateGarden(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.Trees:
		for _, r := range snap.Trees {
			e, err := treeEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			if e.LandID, err = im.required(types.TreeLand, r.ID, r.LandID); err != nil {
				return err
			}
			if err := im.tx.CreateTree(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.PlantingEvents:
		for _, r := range snap.PlantingEvents {
			e, err := plantingEventEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			if e.GardenID, err = im.required(types.PlantingGarden, r.ID, r.GardenID); err != nil {
				return err
			}
			// PlantID is a catalog id and stays as is.
			if err := im.tx.CreatePlantingEvent(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.SoilSamples:
		for _, r := range snap.SoilSamples {
			e, err := soilSampleEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			e.GardenID = im.optional(types.SoilGarden, r.GardenID)
			e.PlantingEventID = im.optional(types.SoilPlanting, r.PlantingEventID)
			if err := im.tx.CreateSoilSample(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.WateringEvents:
		for _, r := range snap.WateringEvents {
			e, err := wateringEventEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			if e.IrrigationZoneID, err = im.required(types.WateringZone, r.ID, r.IrrigationZoneID); err != nil {
				return err
			}
			if err := im.tx.CreateWateringEvent(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	case types.SensorReadings:
		for _, r := range snap.SensorReadings {
			e, err := sensorReadingEntity(r)
			if err != nil {
				return err
			}
			e.UserID = im.uid
			if e.GardenID, err = im.required(types.SensorReadingGarden, r.ID, r.GardenID); err != nil {
				return err
			}
			if err := im.tx.CreateSensorReading(ctx, e); err != nil {
				return fail(err)
			}
			if err := im.record(t, r.ID, e.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
