package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/sensor/repository"
)

type sensorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SensorRepository { return &sensorRepo{db} }

func (r *sensorRepo) Create(ctx context.Context, m *entities.SensorReading) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *sensorRepo) Since(ctx context.Context, gardenID uint, uid string, from time.Time) ([]entities.SensorReading, error) {
	out := []entities.SensorReading{}
	err := r.db.WithContext(ctx).
		Where("garden_id = ? AND user_id = ? AND recorded_at >= ?", gardenID, uid, from).
		Order("recorded_at ASC").
		Find(&out).Error
	return out, err
}

func (r *sensorRepo) GardenOwned(ctx context.Context, gardenID uint, uid string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Garden{}).Where("id = ? AND user_id = ?", gardenID, uid).Count(&n).Error
	return n > 0, err
}
