package repository

import (
	"context"
	"time"

	"gardenbook/entities"
)

type WateringRepository interface {
	CreateSource(ctx context.Context, s *entities.IrrigationSource) error
	ListSources(ctx context.Context, uid string) ([]entities.IrrigationSource, error)
	SourceOwned(ctx context.Context, id uint, uid string) (bool, error)

	CreateZone(ctx context.Context, z *entities.IrrigationZone) error
	ListZones(ctx context.Context, uid string) ([]entities.IrrigationZone, error)
	ZoneOwned(ctx context.Context, id uint, uid string) (bool, error)

	CreateEvent(ctx context.Context, e *entities.WateringEvent) error
	ListEvents(ctx context.Context, zoneID uint, uid string, from, to *time.Time) ([]entities.WateringEvent, error)
}
