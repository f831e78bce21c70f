package api

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internal/apperr"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		expected  PageParams
		expectErr bool
	}{
		{"defaults", "/categories", PageParams{Page: 1, Limit: 10}, false},
		{"explicit values", "/categories?page=3&limit=25", PageParams{Page: 3, Limit: 25}, false},
		{"zero page", "/categories?page=0", PageParams{}, true},
		{"negative limit", "/categories?limit=-1", PageParams{}, true},
		{"non-numeric page", "/categories?page=abc", PageParams{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := Pagination(testContext(t, tt.target))
			if tt.expectErr {
				var ae *apperr.Error
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, apperr.KindBadRequest, ae.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
}

func TestParseIDParam(t *testing.T) {
	c := testContext(t, "/categories/12")
	c.Params = gin.Params{{Key: "id", Value: "12"}}

	id, err := ParseIDParam(c, "category")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = ParseIDParam(c, "category")
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Invalid category ID", ae.Message)
}

func TestQueryUint(t *testing.T) {
	c := testContext(t, "/courses?categoryId=7")
	v, err := QueryUint(c, "categoryId")
	require.NoError(t, err)
	assert.Equal(t, uint(7), v)

	v, err = QueryUint(c, "teacherId")
	require.NoError(t, err)
	assert.Zero(t, v)

	c = testContext(t, "/courses?categoryId=xyz")
	_, err = QueryUint(c, "categoryId")
	assert.Error(t, err)
}
