package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/category/usecase"
	"academy_backend/internal/platform/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockCategoryUsecase struct {
	GetFunc    func(ctx context.Context, id uint) (*entity.Category, error)
	CreateFunc func(ctx context.Context, name string, description *string) (*entity.Category, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockCategoryUsecase) List(ctx context.Context, page, limit int) (*usecase.CategoryPage, error) {
	return &usecase.CategoryPage{
		Categories:      []entity.Category{{ID: 1, Name: "Go"}},
		TotalPages:      1,
		CurrentPage:     page,
		TotalCategories: 1,
	}, nil
}

func (m *mockCategoryUsecase) Get(ctx context.Context, id uint) (*entity.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &entity.Category{ID: id, Name: "Go"}, nil
}

func (m *mockCategoryUsecase) Create(ctx context.Context, name string, description *string) (*entity.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, description)
	}
	return &entity.Category{ID: 1, Name: name, Description: description}, nil
}

func (m *mockCategoryUsecase) Update(ctx context.Context, id uint, name, description *string) (*entity.Category, error) {
	category := &entity.Category{ID: id, Name: "Go"}
	if name != nil {
		category.Name = *name
	}
	return category, nil
}

func (m *mockCategoryUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newCategoryRouter(uc CategoryUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(false))
	h := NewCategoryHandler(uc)
	r.GET("/categories", h.List)
	r.POST("/categories", h.Create)
	r.GET("/categories/:id", h.Get)
	r.PUT("/categories/:id", h.Update)
	r.DELETE("/categories/:id", h.Delete)
	return r
}

func TestCategoryHandler_Get(t *testing.T) {
	t.Run("success is idempotent", func(t *testing.T) {
		r := newCategoryRouter(&mockCategoryUsecase{})

		var bodies []string
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/1", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			data, _ := json.Marshal(envelope["data"])
			bodies = append(bodies, string(data))
		}
		assert.Equal(t, bodies[0], bodies[1])
	})

	t.Run("invalid id", func(t *testing.T) {
		r := newCategoryRouter(&mockCategoryUsecase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category ID")
	})

	t.Run("not found", func(t *testing.T) {
		r := newCategoryRouter(&mockCategoryUsecase{
			GetFunc: func(ctx context.Context, id uint) (*entity.Category, error) {
				return nil, apperr.NotFound("Category")
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Category not found")
	})
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newCategoryRouter(&mockCategoryUsecase{})

		payload, _ := json.Marshal(gin.H{"name": "Go", "description": "Backend"})
		req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		r := newCategoryRouter(&mockCategoryUsecase{})

		payload, _ := json.Marshal(gin.H{"description": "no name"})
		req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		fields := body["errors"].(map[string]any)
		assert.Contains(t, fields, "name")
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	r := newCategoryRouter(&mockCategoryUsecase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/categories/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category deleted successfully")
}

func TestCategoryHandler_List_PaginationValidation(t *testing.T) {
	r := newCategoryRouter(&mockCategoryUsecase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories?page=-1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
