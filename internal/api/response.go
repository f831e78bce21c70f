// Package api defines the response envelopes and request parameter helpers
// shared across every HTTP handler.
package api

import "github.com/gin-gonic/gin"

// DataResponse is the standard success envelope for payload-carrying
// responses.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MessageResponse is the success envelope for message-only responses,
// typically delete confirmations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope. Errors carries the per-field
// map for validation failures, RequestID the correlation identifier, and
// Stack is only populated in development mode.
type ErrorResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
	Stack     string            `json:"stack,omitempty"`
}

// Data writes a success envelope with the given payload.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, DataResponse{Success: true, Data: data})
}

// Message writes a message-only success envelope.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Success: true, Message: message})
}
