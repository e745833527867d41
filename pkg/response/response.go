package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/log"
)

// Error codes shared by the HTTP handlers.
const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidID     = "INVALID_ID"
	CodeUnknownFormat = "UNKNOWN_FORMAT"
	CodeInternal      = "INTERNAL_ERROR"
)

// Response represents a standard API response.
type Response struct {
	Success   bool       `json:"success"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a 200 response.
func Success(c *gin.Context, data any) {
	write(c, http.StatusOK, Response{Success: true, Data: data})
}

// Created sends a 201 response.
func Created(c *gin.Context, data any) {
	write(c, http.StatusCreated, Response{Success: true, Data: data})
}

// Error sends an error response.
func Error(c *gin.Context, statusCode int, code, message string) {
	write(c, statusCode, Response{
		Error: &ErrorInfo{Code: code, Message: message},
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}

func write(c *gin.Context, status int, resp Response) {
	resp.RequestID = log.RequestID(c.Request.Context())
	c.JSON(status, resp)
}
