// Package usecase implements the business logic for the course feature.
package usecase

import (
	"context"
	"time"

	"academy_backend/internal/api"
	"academy_backend/internal/domain/entity"
)

// CourseFilter narrows the course listing. Zero values mean "no filter".
type CourseFilter struct {
	CategoryID uint
	TeacherID  uint
	Search     string
}

// CourseRepository abstracts course persistence. Defined by the consumer
// per Go convention.
type CourseRepository interface {
	List(ctx context.Context, filter CourseFilter, page, limit int) ([]entity.Course, int64, error)
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id uint) error
}

// CoursePage is one page of the course listing.
type CoursePage struct {
	Courses      []entity.Course `json:"courses"`
	TotalPages   int             `json:"totalPages"`
	CurrentPage  int             `json:"currentPage"`
	TotalCourses int64           `json:"totalCourses"`
}

// CreateCourseInput carries the fields for a new course.
type CreateCourseInput struct {
	Title       string
	Description string
	CategoryID  uint
	TeacherID   uint
	Price       float64
	IsFeatured  bool
}

// UpdateCourseInput carries the optional fields of a course update.
// Nil means "leave unchanged".
type UpdateCourseInput struct {
	Title       *string
	Description *string
	CategoryID  *uint
	TeacherID   *uint
	Price       *float64
	IsFeatured  *bool
}

// CourseUsecase implements course CRUD.
type CourseUsecase struct {
	courses CourseRepository
	now     func() time.Time
}

// NewCourseUsecase wires the usecase with its repository.
func NewCourseUsecase(courses CourseRepository) *CourseUsecase {
	return &CourseUsecase{courses: courses, now: time.Now}
}

// List returns one page of courses matching the filter. Featured courses
// come first, newest publications next.
func (u *CourseUsecase) List(ctx context.Context, filter CourseFilter, page, limit int) (*CoursePage, error) {
	courses, total, err := u.courses.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &CoursePage{
		Courses:      courses,
		TotalPages:   api.TotalPages(total, limit),
		CurrentPage:  page,
		TotalCourses: total,
	}, nil
}

// Get returns a single course with its category, teacher and sections.
func (u *CourseUsecase) Get(ctx context.Context, id uint) (*entity.Course, error) {
	return u.courses.FindByID(ctx, id)
}

// Create publishes a new course. PublishedAt is set to the creation time.
func (u *CourseUsecase) Create(ctx context.Context, in CreateCourseInput) (*entity.Course, error) {
	course := &entity.Course{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		TeacherID:   in.TeacherID,
		Price:       in.Price,
		IsFeatured:  in.IsFeatured,
		PublishedAt: u.now(),
	}
	if err := u.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update applies the provided fields to an existing course.
func (u *CourseUsecase) Update(ctx context.Context, id uint, in UpdateCourseInput) (*entity.Course, error) {
	course, err := u.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.CategoryID != nil {
		course.CategoryID = *in.CategoryID
	}
	if in.TeacherID != nil {
		course.TeacherID = *in.TeacherID
	}
	if in.Price != nil {
		course.Price = *in.Price
	}
	if in.IsFeatured != nil {
		course.IsFeatured = *in.IsFeatured
	}
	if err := u.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course.
func (u *CourseUsecase) Delete(ctx context.Context, id uint) error {
	return u.courses.Delete(ctx, id)
}
