package repositoryImp

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"gardenbook/entities"
	"gardenbook/pkg/catalog/repository"
)

type catalogRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CatalogRepository { return &catalogRepo{db} }

func (r *catalogRepo) List(ctx context.Context, q string, limit int) ([]entities.Plant, error) {
	out := []entities.Plant{}
	tx := r.db.WithContext(ctx).Order("common_name ASC")
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(common_name) LIKE ? OR LOWER(scientific_name) LIKE ?", like, like)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) FindByID(ctx context.Context, id uint) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
