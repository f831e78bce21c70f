// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handler depends on.
type AuthUsecase interface {
	Register(ctx context.Context, email, password string) (*usecase.RegisteredUser, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles the /auth endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler wires the handler with its usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register. Password strength is enforced by
// the credential utility so short passwords surface as 422 validation
// errors.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("registration failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.Error(err)
		return
	}

	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	api.Data(c, http.StatusCreated, gin.H{"user": user})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.FromBindJSON(err))
		return
	}

	tokenStr, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.Error(err)
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	api.Data(c, http.StatusOK, gin.H{"token": tokenStr})
}
