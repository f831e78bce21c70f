package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/platform/token"
)

const bearerPrefix = "Bearer "

// TokenVerifier verifies a bearer token and returns its claims.
// The interface is defined here, on the consumer side.
type TokenVerifier interface {
	Verify(tokenStr string) (*token.Claims, error)
}

// Auth returns the authentication gatekeeper for protected routes. It only
// authenticates; role-based authorization is the responsibility of
// downstream handlers. Verification cost is paid on every request, with no
// caching of verified tokens.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "Access denied")
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			// Expired and invalid tokens report distinct messages so
			// clients can prompt a re-login only when it helps.
			msg := "Invalid token"
			if errors.Is(err, token.ErrTokenExpired) {
				msg = "Token expired"
			}
			abortUnauthorized(c, msg)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{
		Success:   false,
		Message:   message,
		RequestID: RequestIDFrom(c),
	})
}
