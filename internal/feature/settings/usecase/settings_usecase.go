// Package usecase implements the business logic for platform settings.
package usecase

import (
	"context"

	"academy_backend/internal/domain/entity"
)

// SettingsRepository abstracts the singleton settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}

// UpdateSettingsInput carries the optional settings fields. Nil means
// "leave unchanged".
type UpdateSettingsInput struct {
	Name            *string
	Email           *string
	Website         *string
	ThemeColor      *string
	LogoURL         *string
	DefaultLanguage *string
	Timezone        *string
	FeaturesEnabled *bool
}

// SettingsUsecase reads and updates the singleton settings row.
type SettingsUsecase struct {
	settings SettingsRepository
}

// NewSettingsUsecase wires the usecase with its repository.
func NewSettingsUsecase(settings SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{settings: settings}
}

// Get returns the platform settings.
func (u *SettingsUsecase) Get(ctx context.Context) (*entity.Settings, error) {
	return u.settings.Get(ctx)
}

// Update applies the provided fields to the settings row and returns the
// updated state.
func (u *SettingsUsecase) Update(ctx context.Context, in UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := u.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		settings.Name = *in.Name
	}
	if in.Email != nil {
		settings.Email = *in.Email
	}
	if in.Website != nil {
		settings.Website = *in.Website
	}
	if in.ThemeColor != nil {
		settings.ThemeColor = *in.ThemeColor
	}
	if in.LogoURL != nil {
		settings.LogoURL = *in.LogoURL
	}
	if in.DefaultLanguage != nil {
		settings.DefaultLanguage = *in.DefaultLanguage
	}
	if in.Timezone != nil {
		settings.Timezone = *in.Timezone
	}
	if in.FeaturesEnabled != nil {
		settings.FeaturesEnabled = *in.FeaturesEnabled
	}
	if err := u.settings.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
