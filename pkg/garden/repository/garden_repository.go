package repository

import (
	"context"

	"gardenbook/entities"
)

type GardenRepository interface {
	CreateLand(ctx context.Context, l *entities.Land) error
	FindLand(ctx context.Context, id uint, uid string) (*entities.Land, error)
	ListLands(ctx context.Context, uid string) ([]entities.Land, error)

	CreateGarden(ctx context.Context, g *entities.Garden) error
	FindGarden(ctx context.Context, id uint, uid string) (*entities.Garden, error)
	ListGardens(ctx context.Context, uid string) ([]entities.Garden, error)

	// ZoneOwned reports whether the irrigation zone exists for uid.
	ZoneOwned(ctx context.Context, id uint, uid string) (bool, error)
}
