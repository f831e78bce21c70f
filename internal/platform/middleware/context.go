// Package middleware provides the cross-cutting request pipeline: request-ID
// tagging, bearer-token authentication, rate limiting and the terminal
// error handler.
package middleware

import "github.com/gin-gonic/gin"

// Context keys set by the middlewares for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextRequestID = "requestID"
)

// RequestIDFrom returns the correlation identifier tagged onto the request,
// or the empty string when the tagging middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
