package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationError reports a caller-fixable input problem. Reasons lists
// every guard that failed so the client can show a precise message.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

// NewValidationError builds a ValidationError from one or more reasons.
func NewValidationError(reasons ...string) error {
	return &ValidationError{Reasons: reasons}
}

// PermissionError reports that the actor lacks the role or ownership
// required for the attempted action.
type PermissionError struct {
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Action)
}

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// ConflictError reports an optimistic-concurrency violation, e.g. a review
// decision on an article another reviewer already resolved.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// UpstreamError wraps a collaborator failure (document store, news source).
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure in %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps a service error onto the HTTP status dictated by its
// type and writes the standard error body. Unknown errors become 500s.
func RespondError(c *gin.Context, err error) {
	var (
		vErr *ValidationError
		pErr *PermissionError
		nErr *NotFoundError
		cErr *ConflictError
		uErr *UpstreamError
	)
	switch {
	case errors.As(err, &vErr):
		JSONError(c, http.StatusUnprocessableEntity, "Validation failed", strings.Join(vErr.Reasons, "; "))
	case errors.As(err, &pErr):
		JSONError(c, http.StatusForbidden, "Access denied", pErr.Action)
	case errors.As(err, &nErr):
		JSONError(c, http.StatusNotFound, "Not found", nErr.Error())
	case errors.As(err, &cErr):
		JSONError(c, http.StatusConflict, "Conflict", cErr.Message)
	case errors.As(err, &uErr):
		JSONError(c, http.StatusBadGateway, "Upstream failure", "A dependency failed. Please retry.")
	default:
		JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}
