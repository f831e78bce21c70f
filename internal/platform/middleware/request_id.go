package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation identifier header, echoed on every
// response.
const HeaderRequestID = "X-Request-ID"

// RequestID tags each request with a correlation identifier: the inbound
// X-Request-ID header when present, a fresh UUID otherwise. The identifier
// is set on the response header and the request context so logs and error
// bodies can carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
