package repository

import (
	"context"

	"gardenbook/entities"
	"gardenbook/pkg/exportimport/types"
)

// Store is the persistence surface used by export and import. Every read
// and delete is scoped to the owning user id.
type Store interface {
	// Transaction runs fn against a store bound to one transaction. A non-nil
	// error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	ListLands(ctx context.Context, uid string) ([]entities.Land, error)
	ListIrrigationSources(ctx context.Context, uid string) ([]entities.IrrigationSource, error)
	ListIrrigationZones(ctx context.Context, uid string) ([]entities.IrrigationZone, error)
	ListGardens(ctx context.Context, uid string) ([]entities.Garden, error)
	ListTrees(ctx context.Context, uid string) ([]entities.Tree, error)
	ListPlantingEvents(ctx context.Context, uid string) ([]entities.PlantingEvent, error)
	ListSoilSamples(ctx context.Context, uid string) ([]entities.SoilSample, error)
	ListWateringEvents(ctx context.Context, uid string) ([]entities.WateringEvent, error)
	// EachSensorReadingBatch streams the user's readings in id order, size at
	// a time. The slice passed to fn is reused between calls.
	EachSensorReadingBatch(ctx context.Context, uid string, size int, fn func([]entities.SensorReading) error) error

	CountOwned(ctx context.Context, uid string) (types.Counts, error)
	// DeleteOwned removes every record the user owns, dependents first.
	DeleteOwned(ctx context.Context, uid string) (types.Counts, error)
	// ExistingPlantIDs returns the subset of ids present in the plant catalog.
	ExistingPlantIDs(ctx context.Context, ids []uint) (map[uint]bool, error)

	CreateLand(ctx context.Context, v *entities.Land) error
	CreateIrrigationSource(ctx context.Context, v *entities.IrrigationSource) error
	CreateIrrigationZone(ctx context.Context, v *entities.IrrigationZone) error
	CreateGarden(ctx context.Context, v *entities.Garden) error
	CreateTree(ctx context.Context, v *entities.Tree) error
	CreatePlantingEvent(ctx context.Context, v *entities.PlantingEvent) error
	CreateSoilSample(ctx context.Context, v *entities.SoilSample) error
	CreateWateringEvent(ctx context.Context, v *entities.WateringEvent) error
	CreateSensorReading(ctx context.Context, v *entities.SensorReading) error
}
