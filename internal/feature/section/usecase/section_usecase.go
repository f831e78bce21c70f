// Package usecase implements the business logic for course sections.
package usecase

import (
	"context"

	"academy_backend/internal/api"
	"academy_backend/internal/domain/entity"
)

// SectionFilter narrows the section listing. Zero values mean "no filter".
type SectionFilter struct {
	CourseID uint
	Search   string
}

// SectionRepository abstracts section persistence. Create must assign the
// next order index for the course atomically.
type SectionRepository interface {
	List(ctx context.Context, filter SectionFilter, page, limit int) ([]entity.CourseSection, int64, error)
	FindByID(ctx context.Context, id uint) (*entity.CourseSection, error)
	Create(ctx context.Context, section *entity.CourseSection) error
	Update(ctx context.Context, section *entity.CourseSection) error
	Delete(ctx context.Context, id uint) error
}

// CourseChecker verifies the parent course exists before a section is
// attached to it.
type CourseChecker interface {
	FindByID(ctx context.Context, id uint) (*entity.Course, error)
}

// SectionPage is one page of the section listing.
type SectionPage struct {
	Sections      []entity.CourseSection `json:"sections"`
	TotalPages    int                    `json:"totalPages"`
	CurrentPage   int                    `json:"currentPage"`
	TotalSections int64                  `json:"totalSections"`
}

// SectionUsecase implements section CRUD.
type SectionUsecase struct {
	sections SectionRepository
	courses  CourseChecker
}

// NewSectionUsecase wires the usecase with its repositories.
func NewSectionUsecase(sections SectionRepository, courses CourseChecker) *SectionUsecase {
	return &SectionUsecase{sections: sections, courses: courses}
}

// List returns one page of sections matching the filter, ordered by their
// position within the course.
func (u *SectionUsecase) List(ctx context.Context, filter SectionFilter, page, limit int) (*SectionPage, error) {
	sections, total, err := u.sections.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &SectionPage{
		Sections:      sections,
		TotalPages:    api.TotalPages(total, limit),
		CurrentPage:   page,
		TotalSections: total,
	}, nil
}

// Get returns a single section by ID.
func (u *SectionUsecase) Get(ctx context.Context, id uint) (*entity.CourseSection, error) {
	return u.sections.FindByID(ctx, id)
}

// Create appends a new section to a course. The order index is assigned by
// the repository as max(existing)+1 in a single statement, so concurrent
// creates never collide.
func (u *SectionUsecase) Create(ctx context.Context, courseID uint, title string, description *string) (*entity.CourseSection, error) {
	if _, err := u.courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	section := &entity.CourseSection{
		CourseID:    courseID,
		Title:       title,
		Description: description,
	}
	if err := u.sections.Create(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Update changes a section's title and description. The course and order
// index are immutable after creation.
func (u *SectionUsecase) Update(ctx context.Context, id uint, title, description *string) (*entity.CourseSection, error) {
	section, err := u.sections.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title != nil {
		section.Title = *title
	}
	if description != nil {
		section.Description = description
	}
	if err := u.sections.Update(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes a section. Order indexes of the remaining sections are left
// as they are; ordering stays monotonic.
func (u *SectionUsecase) Delete(ctx context.Context, id uint) error {
	return u.sections.Delete(ctx, id)
}
