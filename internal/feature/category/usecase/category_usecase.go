// Package usecase implements the business logic for the category feature.
package usecase

import (
	"context"

	"academy_backend/internal/api"
	"academy_backend/internal/domain/entity"
)

// CategoryRepository abstracts category persistence. Defined by the
// consumer per Go convention.
type CategoryRepository interface {
	List(ctx context.Context, page, limit int) ([]entity.Category, int64, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
}

// CategoryPage is one page of the category listing.
type CategoryPage struct {
	Categories      []entity.Category `json:"categories"`
	TotalPages      int               `json:"totalPages"`
	CurrentPage     int               `json:"currentPage"`
	TotalCategories int64             `json:"totalCategories"`
}

// CategoryUsecase implements category CRUD.
type CategoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase wires the usecase with its repository.
func NewCategoryUsecase(categories CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

// List returns one page of categories.
func (u *CategoryUsecase) List(ctx context.Context, page, limit int) (*CategoryPage, error) {
	categories, total, err := u.categories.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &CategoryPage{
		Categories:      categories,
		TotalPages:      api.TotalPages(total, limit),
		CurrentPage:     page,
		TotalCategories: total,
	}, nil
}

// Get returns a single category by ID.
func (u *CategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return u.categories.FindByID(ctx, id)
}

// Create adds a new category.
func (u *CategoryUsecase) Create(ctx context.Context, name string, description *string) (*entity.Category, error) {
	category := &entity.Category{Name: name, Description: description}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies the provided fields to an existing category.
func (u *CategoryUsecase) Update(ctx context.Context, id uint, name, description *string) (*entity.Category, error) {
	category, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		category.Name = *name
	}
	if description != nil {
		category.Description = description
	}
	if err := u.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category.
func (u *CategoryUsecase) Delete(ctx context.Context, id uint) error {
	return u.categories.Delete(ctx, id)
}
