// Package handler provides the HTTP handlers for course sections.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/section/usecase"
)

// SectionUsecase defines the section operations the handler depends on.
type SectionUsecase interface {
	List(ctx context.Context, filter usecase.SectionFilter, page, limit int) (*usecase.SectionPage, error)
	Get(ctx context.Context, id uint) (*entity.CourseSection, error)
	Create(ctx context.Context, courseID uint, title string, description *string) (*entity.CourseSection, error)
	Update(ctx context.Context, id uint, title, description *string) (*entity.CourseSection, error)
	Delete(ctx context.Context, id uint) error
}

// SectionHandler handles the /course-sections endpoints.
type SectionHandler struct {
	sections SectionUsecase
}

// NewSectionHandler wires the handler with its usecase.
func NewSectionHandler(sections SectionUsecase) *SectionHandler {
	return &SectionHandler{sections: sections}
}

type createSectionRequest struct {
	CourseID    uint    `json:"courseId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type updateSectionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// List handles GET /course-sections with optional courseId and search
// filters.
func (h *SectionHandler) List(c *gin.Context) {
	params, err := api.Pagination(c)
	if err != nil {
		c.Error(err)
		return
	}
	courseID, err := api.QueryUint(c, "courseId")
	if err != nil {
		c.Error(err)
		return
	}
	filter := usecase.SectionFilter{CourseID: courseID, Search: c.Query("search")}

	page, err := h.sections.List(c.Request.Context(), filter, params.Page, params.Limit)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, page)
}

// Get handles GET /course-sections/:id.
func (h *SectionHandler) Get(c *gin.Context) {
	id, err := api.ParseIDParam(c, "section")
	if err != nil {
		c.Error(err)
		return
	}

	section, err := h.sections.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, section)
}

// Create handles POST /course-sections.
func (h *SectionHandler) Create(c *gin.Context) {
	var req createSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	section, err := h.sections.Create(c.Request.Context(), req.CourseID, req.Title, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusCreated, section)
}

// Update handles PUT /course-sections/:id.
func (h *SectionHandler) Update(c *gin.Context) {
	id, err := api.ParseIDParam(c, "section")
	if err != nil {
		c.Error(err)
		return
	}

	var req updateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	section, err := h.sections.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, section)
}

// Delete handles DELETE /course-sections/:id.
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := api.ParseIDParam(c, "section")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.sections.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	api.Message(c, http.StatusOK, "Course section deleted successfully")
}
