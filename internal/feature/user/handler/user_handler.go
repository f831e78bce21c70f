// Package handler provides the HTTP handlers for user administration.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/feature/user/usecase"
)

// UserUsecase defines the user operations the handler depends on.
type UserUsecase interface {
	List(ctx context.Context, filter usecase.UserFilter, page, limit int) (*usecase.UserPage, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, id uint, in usecase.UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler handles the /users endpoints.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler wires the handler with its usecase.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	RoleID    uint    `json:"roleId"`
	Active    *bool   `json:"active"`
}

type updateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	RoleID    *uint   `json:"roleId"`
	Active    *bool   `json:"active"`
}

// List handles GET /users with optional email, firstName, lastName and
// roleId filters.
func (h *UserHandler) List(c *gin.Context) {
	params, err := api.Pagination(c)
	if err != nil {
		c.Error(err)
		return
	}
	roleID, err := api.QueryUint(c, "roleId")
	if err != nil {
		c.Error(err)
		return
	}
	filter := usecase.UserFilter{
		Email:     c.Query("email"),
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
		RoleID:    roleID,
	}

	page, err := h.users.List(c.Request.Context(), filter, params.Page, params.Limit)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, page)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := api.ParseIDParam(c, "user")
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, user)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    req.RoleID,
		Active:    req.Active,
	})
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusCreated, user)
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := api.ParseIDParam(c, "user")
	if err != nil {
		c.Error(err)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    req.RoleID,
		Active:    req.Active,
	})
	if err != nil {
		c.Error(err)
		return
	}
	api.Data(c, http.StatusOK, user)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := api.ParseIDParam(c, "user")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	api.Message(c, http.StatusOK, "User deleted successfully")
}
