package repository

import (
	"context"

	"gardenbook/entities"
)

type CatalogRepository interface {
	List(ctx context.Context, q string, limit int) ([]entities.Plant, error)
	FindByID(ctx context.Context, id uint) (*entities.Plant, error)
}
