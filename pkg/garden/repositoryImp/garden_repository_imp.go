package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/garden/repository"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) CreateLand(ctx context.Context, l *entities.Land) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *gardenRepo) FindLand(ctx context.Context, id uint, uid string) (*entities.Land, error) {
	var l entities.Land
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *gardenRepo) ListLands(ctx context.Context, uid string) ([]entities.Land, error) {
	out := []entities.Land{}
	return out, r.db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&out).Error
}

func (r *gardenRepo) CreateGarden(ctx context.Context, g *entities.Garden) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gardenRepo) FindGarden(ctx context.Context, id uint, uid string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gardenRepo) ListGardens(ctx context.Context, uid string) ([]entities.Garden, error) {
	out := []entities.Garden{}
	return out, r.db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&out).Error
}

func (r *gardenRepo) ZoneOwned(ctx context.Context, id uint, uid string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.IrrigationZone{}).Where("id = ? AND user_id = ?", id, uid).Count(&n).Error
	return n > 0, err
}
