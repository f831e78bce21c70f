// Package adapters provides the GORM repository for the course feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/course/usecase"
)

type courseGorm struct {
	db *gorm.DB
}

var _ usecase.CourseRepository = (*courseGorm)(nil)

// NewCourseGorm creates the GORM-backed course repository.
func NewCourseGorm(db *gorm.DB) *courseGorm {
	return &courseGorm{db: db}
}

func (r *courseGorm) List(ctx context.Context, filter usecase.CourseFilter, page, limit int) ([]entity.Course, int64, error) {
	var courses []entity.Course
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.Course{})
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.TeacherID != 0 {
		q = q.Where("teacher_id = ?", filter.TeacherID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Preload("Category").
		Order("is_featured DESC, published_at DESC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *courseGorm) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var course entity.Course
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Teacher").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course")
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseGorm) Create(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(course).Error
}

func (r *courseGorm) Update(ctx context.Context, course *entity.Course) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(course).Error
}

func (r *courseGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Course")
	}
	return nil
}
