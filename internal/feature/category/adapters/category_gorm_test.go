package adapters

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&entity.Category{}))
	return db
}

func TestCategoryGorm_CRUD(t *testing.T) {
	repo := NewCategoryGorm(setupTestDB(t))
	ctx := context.Background()

	desc := "Frontend frameworks"
	category := &entity.Category{Name: "Web Development", Description: &desc}
	require.NoError(t, repo.Create(ctx, category))
	require.NotZero(t, category.ID)

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Development", found.Name)

	found.Name = "Web Dev"
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Dev", again.Name)

	require.NoError(t, repo.Delete(ctx, category.ID))

	_, err = repo.FindByID(ctx, category.ID)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
	assert.Equal(t, "Category not found", ae.Message)
}

func TestCategoryGorm_Delete_NotFound(t *testing.T) {
	repo := NewCategoryGorm(setupTestDB(t))

	err := repo.Delete(context.Background(), 999)

	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestCategoryGorm_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryGorm(db)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		require.NoError(t, db.Create(&entity.Category{Name: fmt.Sprintf("Category %02d", i)}).Error)
	}

	first, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, first, 10)

	second, _, err := repo.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, "Category 11", second[0].Name)
}
