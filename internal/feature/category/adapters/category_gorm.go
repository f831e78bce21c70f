// Package adapters provides the GORM repository for the category feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/category/usecase"
)

type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryGorm creates the GORM-backed category repository.
func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

func (r *categoryGorm) List(ctx context.Context, page, limit int) ([]entity.Category, int64, error) {
	var categories []entity.Category
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryGorm) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category")
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryGorm) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryGorm) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Category")
	}
	return nil
}
