// Package adapters provides the GORM repository for platform settings.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/settings/usecase"
)

type settingsGorm struct {
	db *gorm.DB
}

var _ usecase.SettingsRepository = (*settingsGorm)(nil)

// NewSettingsGorm creates the GORM-backed settings repository.
func NewSettingsGorm(db *gorm.DB) *settingsGorm {
	return &settingsGorm{db: db}
}

// Get returns the singleton settings row. The row is seeded at migration
// time, so a missing row means a broken database.
func (r *settingsGorm) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := r.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Settings")
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsGorm) Update(ctx context.Context, settings *entity.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
