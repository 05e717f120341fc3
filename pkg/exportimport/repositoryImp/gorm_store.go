package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/repository"
	"gardenbook/pkg/exportimport/types"
)

type gormStore struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Store { return &gormStore{db} }

// owned maps each entity type to the model gorm needs for count and delete.
var owned = map[types.EntityType]any{
	types.Lands:             &entities.Land{},
	types.IrrigationSources: &entities.IrrigationSource{},
	types.IrrigationZones:   &entities.IrrigationZone{},
	types.Gardens:           &entities.Garden{},
	types.Trees:             &entities.Tree{},
	types.PlantingEvents:    &entities.PlantingEvent{},
	types.SoilSamples:       &entities.SoilSample{},
	types.WateringEvents:    &entities.WateringEvent{},
	types.SensorReadings:    &entities.SensorReading{},
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{tx})
	})
}

func listOwned[T any](ctx context.Context, db *gorm.DB, uid string) ([]T, error) {
	out := []T{}
	if err := db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) ListLands(ctx context.Context, uid string) ([]entities.Land, error) {
	return listOwned[entities.Land](ctx, s.db, uid)
}

func (s *gormStore) ListIrrigationSources(ctx context.Context, uid string) ([]entities.IrrigationSource, error) {
	return listOwned[entities.IrrigationSource](ctx, s.db, uid)
}

func (s *gormStore) ListIrrigationZones(ctx context.Context, uid string) ([]entities.IrrigationZone, error) {
	return listOwned[entities.IrrigationZone](ctx, s.db, uid)
}

func (s *gormStore) ListGardens(ctx context.Context, uid string) ([]entities.Garden, error) {
	return listOwned[entities.Garden](ctx, s.db, uid)
}

func (s *gormStore) ListTrees(ctx context.Context, uid string) ([]entities.Tree, error) {
	return listOwned[entities.Tree](ctx, s.db, uid)
}

func (s *gormStore) ListPlantingEvents(ctx context.Context, uid string) ([]entities.PlantingEvent, error) {
	return listOwned[entities.PlantingEvent](ctx, s.db, uid)
}

func (s *gormStore) ListSoilSamples(ctx context.Context, uid string) ([]entities.SoilSample, error) {
	return listOwned[entities.SoilSample](ctx, s.db, uid)
}

func (s *gormStore) ListWateringEvents(ctx context.Context, uid string) ([]entities.WateringEvent, error) {
	return listOwned[entities.WateringEvent](ctx, s.db, uid)
}

func (s *gormStore) EachSensorReadingBatch(ctx context.Context, uid string, size int, fn func([]entities.SensorReading) error) error {
	if size <= 0 {
		size = 500
	}
	var batch []entities.SensorReading
	// FindInBatches pages on the primary key; no extra Order clause.
	return s.db.WithContext(ctx).
		Where("user_id = ?", uid).
		FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}

func (s *gormStore) CountOwned(ctx context.Context, uid string) (types.Counts, error) {
	out := types.Counts{}
	for _, t := range types.DependencyOrder {
		var n int64
		if err := s.db.WithContext(ctx).Model(owned[t]).Where("user_id = ?", uid).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		out[t] = int(n)
	}
	return out, nil
}

func (s *gormStore) DeleteOwned(ctx context.Context, uid string) (types.Counts, error) {
	out := types.Counts{}
	for i := len(types.DependencyOrder) - 1; i >= 0; i-- {
		t := types.DependencyOrder[i]
		res := s.db.WithContext(ctx).Where("user_id = ?", uid).Delete(owned[t])
		if res.Error != nil {
			return nil, fmt.Errorf("delete %s: %w", t, res.Error)
		}
		out[t] = int(res.RowsAffected)
	}
	return out, nil
}

func (s *gormStore) ExistingPlantIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	found := map[uint]bool{}
	if len(ids) == 0 {
		return found, nil
	}
	var hit []uint
	if err := s.db.WithContext(ctx).Model(&entities.Plant{}).Where("id IN ?", ids).Pluck("id", &hit).Error; err != nil {
		return nil, err
	}
	for _, id := range hit {
		found[id] = true
	}
	return found, nil
}

func (s *gormStore) create(ctx context.Context, v any) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *gormStore) CreateLand(ctx context.Context, v *entities.Land) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateIrrigationSource(ctx context.Context, v *entities.IrrigationSource) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateIrrigationZone(ctx context.Context, v *entities.IrrigationZone) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateGarden(ctx context.Context, v *entities.Garden) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateTree(ctx context.Context, v *entities.Tree) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreatePlantingEvent(ctx context.Context, v *entities.PlantingEvent) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateSoilSample(ctx context.Context, v *entities.SoilSample) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateWateringEvent(ctx context.Context, v *entities.WateringEvent) error {
	return s.create(ctx, v)
}

func (s *gormStore) CreateSensorReading(ctx context.Context, v *entities.SensorReading) error {
	return s.create(ctx, v)
}
