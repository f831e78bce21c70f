// Package adapters provides the GORM repository for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/auth/usecase"
)

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates the GORM-backed user repository for authentication.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A unique-index violation on email is surfaced as
// a typed BadRequest so the handler responds 400 without string matching.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.BadRequest("Email already registered")
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user with its role preloaded.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return &u, nil
}
