// Package handler provides the HTTP handlers for the category feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/category/usecase"
)

// CategoryUsecase defines the category operations the handler depends on.
type CategoryUsecase interface {
	List(ctx context.Context, page, limit int) (*usecase.CategoryPage, error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, name string, description *string) (*entity.Category, error)
	Update(ctx context.Context, id uint, name, description *string) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler handles the /categories endpoints.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler wires the handler with its usecase.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type createCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	params, err := api.Pagination(c)
	if err != nil {
		c.Error(err)
		return
	}

	page, err := h.categories.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, page)
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := api.ParseIDParam(c, "category")
	if err != nil {
		c.Error(err)
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, category)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusCreated, category)
}

// Update handles PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := api.ParseIDParam(c, "category")
	if err != nil {
		c.Error(err)
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, category)
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := api.ParseIDParam(c, "category")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	api.Message(c, http.StatusOK, "Category deleted successfully")
}
