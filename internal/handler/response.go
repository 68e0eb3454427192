package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents machine-readable error codes.
type ErrorCode string

const (
	ErrorNotFound        ErrorCode = "NOT_FOUND"
	ErrorAlreadySignedUp ErrorCode = "ALREADY_SIGNED_UP"
	ErrorActivityFull    ErrorCode = "ACTIVITY_FULL"
	ErrorInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrorInternal        ErrorCode = "INTERNAL"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// MessageResponse represents a confirmation returned by roster changes.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityResponse represents one activity in GET /activities.
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, ErrorInternal, message, http.StatusInternalServerError)
}
