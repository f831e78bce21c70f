// Package handler provides the HTTP handlers for the course feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/course/usecase"
)

// CourseUsecase defines the course operations the handler depends on.
type CourseUsecase interface {
	List(ctx context.Context, filter usecase.CourseFilter, page, limit int) (*usecase.CoursePage, error)
	Get(ctx context.Context, id uint) (*entity.Course, error)
	Create(ctx context.Context, in usecase.CreateCourseInput) (*entity.Course, error)
	Update(ctx context.Context, id uint, in usecase.UpdateCourseInput) (*entity.Course, error)
	Delete(ctx context.Context, id uint) error
}

// CourseHandler handles the /courses endpoints.
type CourseHandler struct {
	courses CourseUsecase
}

// NewCourseHandler wires the handler with its usecase.
func NewCourseHandler(courses CourseUsecase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

type createCourseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	TeacherID   uint    `json:"teacherId" binding:"required"`
	Price       float64 `json:"price"`
	IsFeatured  bool    `json:"isFeatured"`
}

type updateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *uint    `json:"categoryId"`
	TeacherID   *uint    `json:"teacherId"`
	Price       *float64 `json:"price"`
	IsFeatured  *bool    `json:"isFeatured"`
}

// List handles GET /courses with optional categoryId, teacherId and search
// filters.
func (h *CourseHandler) List(c *gin.Context) {
	params, err := api.Pagination(c)
	if err != nil {
		c.Error(err)
		return
	}
	categoryID, err := api.QueryUint(c, "categoryId")
	if err != nil {
		c.Error(err)
		return
	}
	teacherID, err := api.QueryUint(c, "teacherId")
	if err != nil {
		c.Error(err)
		return
	}
	filter := usecase.CourseFilter{
		CategoryID: categoryID,
		TeacherID:  teacherID,
		Search:     c.Query("search"),
	}

	page, err := h.courses.List(c.Request.Context(), filter, params.Page, params.Limit)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, page)
}

// Get handles GET /courses/:id.
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := api.ParseIDParam(c, "course")
	if err != nil {
		c.Error(err)
		return
	}

	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, course)
}

// Create handles POST /courses.
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	course, err := h.courses.Create(c.Request.Context(), usecase.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TeacherID:   req.TeacherID,
		Price:       req.Price,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusCreated, course)
}

// Update handles PUT /courses/:id.
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := api.ParseIDParam(c, "course")
	if err != nil {
		c.Error(err)
		return
	}

	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	course, err := h.courses.Update(c.Request.Context(), id, usecase.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TeacherID:   req.TeacherID,
		Price:       req.Price,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, course)
}

// Delete handles DELETE /courses/:id.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := api.ParseIDParam(c, "course")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	api.Message(c, http.StatusOK, "Course deleted successfully")
}
