package serviceImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gardenbook/entities"
	repo "gardenbook/pkg/garden/repository"
	"gardenbook/pkg/garden/service"
)

type gardenSvc struct{ r repo.GardenRepository }

func NewGardenService(r repo.GardenRepository) service.GardenService { return &gardenSvc{r} }

func (s *gardenSvc) CreateLand(ctx context.Context, uid string, l *entities.Land) (*entities.Land, error) {
	l.ID = 0
	l.UserID = uid
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := s.r.CreateLand(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *gardenSvc) ListLands(ctx context.Context, uid string) ([]entities.Land, error) {
	return s.r.ListLands(ctx, uid)
}

func (s *gardenSvc) CreateGarden(ctx context.Context, uid string, g *entities.Garden) (*entities.Garden, error) {
	g.ID = 0
	g.UserID = uid
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.LandID != nil {
		land, err := s.r.FindLand(ctx, *g.LandID, uid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("land %d: %w", *g.LandID, service.ErrNotOwned)
		}
		if err != nil {
			return nil, err
		}
		if err := g.FitsOn(land); err != nil {
			return nil, err
		}
	}
	if g.IrrigationZoneID != nil {
		ok, err := s.r.ZoneOwned(ctx, *g.IrrigationZoneID, uid)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("irrigation zone %d: %w", *g.IrrigationZoneID, service.ErrNotOwned)
		}
	}
	if err := s.r.CreateGarden(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gardenSvc) GetGarden(ctx context.Context, id uint, uid string) (*entities.Garden, error) {
	return s.r.FindGarden(ctx, id, uid)
}

func (s *gardenSvc) ListGardens(ctx context.Context, uid string) ([]entities.Garden, error) {
	return s.r.ListGardens(ctx, uid)
}
