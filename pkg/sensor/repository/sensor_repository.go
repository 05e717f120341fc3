package repository

import (
	"context"
	"time"

	"gardenbook/entities"
)

type SensorRepository interface {
	Create(ctx context.Context, r *entities.SensorReading) error
	// Since lists a garden's readings recorded at or after from, oldest first.
	Since(ctx context.Context, gardenID uint, uid string, from time.Time) ([]entities.SensorReading, error)
	GardenOwned(ctx context.Context, gardenID uint, uid string) (bool, error)
}
