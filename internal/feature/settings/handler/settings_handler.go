// Package handler provides the HTTP handlers for platform settings.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/settings/usecase"
)

// SettingsUsecase defines the settings operations the handler depends on.
type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, in usecase.UpdateSettingsInput) (*entity.Settings, error)
}

// SettingsHandler handles the /settings endpoints.
type SettingsHandler struct {
	settings SettingsUsecase
}

// NewSettingsHandler wires the handler with its usecase.
func NewSettingsHandler(settings SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type updateSettingsRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Website         *string `json:"website"`
	ThemeColor      *string `json:"themeColor"`
	LogoURL         *string `json:"logoUrl"`
	DefaultLanguage *string `json:"defaultLanguage"`
	Timezone        *string `json:"timezone"`
	FeaturesEnabled *bool   `json:"featuresEnabled"`
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, settings)
}

// Update handles PUT /settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), usecase.UpdateSettingsInput{
		Name:            req.Name,
		Email:           req.Email,
		Website:         req.Website,
		ThemeColor:      req.ThemeColor,
		LogoURL:         req.LogoURL,
		DefaultLanguage: req.DefaultLanguage,
		Timezone:        req.Timezone,
		FeaturesEnabled: req.FeaturesEnabled,
	})
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, settings)
}
