package service

import (
	"context"
	"errors"

	"gardenbook/entities"
)

// ErrNotOwned is returned when a referenced record does not belong to the
// acting user.
var ErrNotOwned = errors.New("referenced record not found")

type GardenService interface {
	CreateLand(ctx context.Context, uid string, l *entities.Land) (*entities.Land, error)
	ListLands(ctx context.Context, uid string) ([]entities.Land, error)
	CreateGarden(ctx context.Context, uid string, g *entities.Garden) (*entities.Garden, error)
	GetGarden(ctx context.Context, id uint, uid string) (*entities.Garden, error)
	ListGardens(ctx context.Context, uid string) ([]entities.Garden, error)
}
