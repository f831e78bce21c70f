// Package adapters provides the GORM repository for user administration.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/user/usecase"
)

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates the GORM-backed user repository.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

func (r *userGorm) List(ctx context.Context, filter usecase.UserFilter, page, limit int) ([]entity.User, int64, error) {
	var users []entity.User
	var total int64

	q := r.db.WithContext(ctx).Model(&entity.User{})
	if filter.Email != "" {
		q = q.Where("LOWER(email) LIKE LOWER(?)", "%"+filter.Email+"%")
	}
	if filter.FirstName != "" {
		q = q.Where("LOWER(first_name) LIKE LOWER(?)", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		q = q.Where("LOWER(last_name) LIKE LOWER(?)", "%"+filter.LastName+"%")
	}
	if filter.RoleID != 0 {
		q = q.Where("role_id = ?", filter.RoleID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Preload("Role").
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userGorm) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.BadRequest("Email already registered")
	}
	return err
}

func (r *userGorm) Update(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.BadRequest("Email already registered")
	}
	return err
}

func (r *userGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User")
	}
	return nil
}
