package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/apperr"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PageParams holds the validated pagination query parameters.
type PageParams struct {
	Page  int
	Limit int
}

// Pagination parses the page and limit query parameters, applying the
// defaults (page 1, limit 10) and rejecting non-positive or non-numeric
// values with a BadRequest error.
func Pagination(c *gin.Context) (PageParams, error) {
	page, err := positiveQueryInt(c, "page", defaultPage)
	if err != nil {
		return PageParams{}, err
	}
	limit, err := positiveQueryInt(c, "limit", defaultLimit)
	if err != nil {
		return PageParams{}, err
	}
	return PageParams{Page: page, Limit: limit}, nil
}

// TotalPages computes the page count for a total row count at the given
// limit.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		return 1
	}
	return pages
}

// ParseIDParam parses the :id path parameter, rejecting non-numeric values
// with a BadRequest whose message names the resource, e.g.
// "Invalid category ID".
func ParseIDParam(c *gin.Context, resource string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid " + resource + " ID")
	}
	return uint(id), nil
}

// QueryUint parses an optional numeric query parameter. An absent parameter
// yields zero; a malformed one yields a BadRequest.
func QueryUint(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.BadRequest(fmt.Sprintf("%s must be a positive integer", name))
	}
	return uint(n), nil
}

func positiveQueryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.BadRequest(fmt.Sprintf("%s must be a positive integer", name))
	}
	return n, nil
}
