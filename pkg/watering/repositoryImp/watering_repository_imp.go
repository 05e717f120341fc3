package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/watering/repository"
)

type wateringRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WateringRepository { return &wateringRepo{db} }

func (r *wateringRepo) owned(ctx context.Context, model any, id uint, uid string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ? AND user_id = ?", id, uid).Count(&n).Error
	return n > 0, err
}

func (r *wateringRepo) CreateSource(ctx context.Context, s *entities.IrrigationSource) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *wateringRepo) ListSources(ctx context.Context, uid string) ([]entities.IrrigationSource, error) {
	out := []entities.IrrigationSource{}
	return out, r.db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&out).Error
}

func (r *wateringRepo) SourceOwned(ctx context.Context, id uint, uid string) (bool, error) {
	return r.owned(ctx, &entities.IrrigationSource{}, id, uid)
}

func (r *wateringRepo) CreateZone(ctx context.Context, z *entities.IrrigationZone) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *wateringRepo) ListZones(ctx context.Context, uid string) ([]entities.IrrigationZone, error) {
	out := []entities.IrrigationZone{}
	return out, r.db.WithContext(ctx).Where("user_id = ?", uid).Order("id ASC").Find(&out).Error
}

func (r *wateringRepo) ZoneOwned(ctx context.Context, id uint, uid string) (bool, error) {
	return r.owned(ctx, &entities.IrrigationZone{}, id, uid)
}

func (r *wateringRepo) CreateEvent(ctx context.Context, e *entities.WateringEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *wateringRepo) ListEvents(ctx context.Context, zoneID uint, uid string, from, to *time.Time) ([]entities.WateringEvent, error) {
	q := r.db.WithContext(ctx).Where("irrigation_zone_id = ? AND user_id = ?", zoneID, uid)
	if from != nil {
		q = q.Where("watered_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("watered_at <= ?", *to)
	}
	out := []entities.WateringEvent{}
	return out, q.Order("watered_at ASC, id ASC").Find(&out).Error
}
