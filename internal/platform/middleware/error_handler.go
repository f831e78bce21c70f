package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
	"academy_backend/internal/apperr"
	"academy_backend/internal/platform/token"
)

// ErrorHandler is the terminal sink of the request pipeline. Handlers attach
// errors via c.Error and return; this middleware translates the last
// attached error into the HTTP response, logs it, and never re-raises.
// In development mode the raw message and a stack trace are included for
// unrecognized errors; in production those are replaced with a generic
// message. Recognized operational errors always expose their message.
func ErrorHandler(dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		render(c, dev, last.Err, "")
	}
}

// Recovery converts panics into the same error rendering path, carrying the
// panic stack.
func Recovery(dev bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		render(c, dev, fmt.Errorf("panic: %v", recovered), string(debug.Stack()))
	})
}

func render(c *gin.Context, dev bool, err error, stack string) {
	status := http.StatusInternalServerError
	body := api.ErrorResponse{
		Success:   false,
		Message:   "Internal server error",
		RequestID: RequestIDFrom(c),
	}

	var ae *apperr.Error
	switch {
	case errors.As(err, &ae):
		status = ae.Status()
		body.Message = ae.Message
		body.Errors = ae.Fields
		// Internal-kind messages are generic already; show the cause in dev.
		if dev && ae.Kind == apperr.KindInternal && ae.Err != nil {
			body.Message = ae.Err.Error()
		}
	case errors.Is(err, token.ErrTokenExpired):
		status = http.StatusUnauthorized
		body.Message = "Token expired"
	case errors.Is(err, token.ErrTokenInvalid):
		status = http.StatusUnauthorized
		body.Message = "Invalid token"
	default:
		if dev {
			body.Message = err.Error()
		}
	}

	if dev && status == http.StatusInternalServerError {
		if stack == "" {
			stack = string(debug.Stack())
		}
		body.Stack = stack
	}

	slog.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"error", err,
		"request_id", body.RequestID,
	)

	c.AbortWithStatusJSON(status, body)
}
