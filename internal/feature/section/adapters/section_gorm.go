// Package adapters provides the GORM repository for course sections.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/section/usecase"
)

type sectionGorm struct {
	db *gorm.DB
}

var _ usecase.SectionRepository = (*sectionGorm)(nil)

// NewSectionGorm creates the GORM-backed section repository.
func NewSectionGorm(db *gorm.DB) *sectionGorm {
	return &sectionGorm{db: db}
}

func (r *sectionGorm) List(ctx context.Context, filter usecase.SectionFilter, page, limit int) ([]entity.CourseSection, int64, error) {
	var sections []entity.CourseSection
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.CourseSection{})
	if filter.CourseID != 0 {
		q = q.Where("course_id = ?", filter.CourseID)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("course_id ASC, order_index ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sections).Error
	if err != nil {
		return nil, 0, err
	}
	return sections, total, nil
}

func (r *sectionGorm) FindByID(ctx context.Context, id uint) (*entity.CourseSection, error) {
	var section entity.CourseSection
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Course section")
		}
		return nil, err
	}
	return &section, nil
}

// Create inserts the section with order_index computed as max(existing)+1
// in the same statement. Both SQLite and Postgres support RETURNING, so the
// assignment is race-free without an explicit transaction.
func (r *sectionGorm) Create(ctx context.Context, section *entity.CourseSection) error {
	const insert = `
		INSERT INTO course_sections (course_id, title, description, order_index, created_at, updated_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(order_index), 0) + 1 FROM course_sections WHERE course_id = ?), CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id`

	var id uint
	err := r.db.WithContext(ctx).
		Raw(insert, section.CourseID, section.Title, section.Description, section.CourseID).
		Scan(&id).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).First(section, id).Error
}

func (r *sectionGorm) Update(ctx context.Context, section *entity.CourseSection) error {
	return r.db.WithContext(ctx).Save(section).Error
}

func (r *sectionGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.CourseSection{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Course section")
	}
	return nil
}
