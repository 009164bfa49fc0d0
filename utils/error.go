package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppError is the error taxonomy shared by every service. Services return
// these; handlers map them onto HTTP responses with RespondError.
type AppError struct {
	Code    string
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on the taxonomy code so wrapped copies still compare equal
// to their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of e carrying a more specific message.
func (e *AppError) WithMessage(format string, args ...interface{}) *AppError {
	return &AppError{Code: e.Code, Status: e.Status, Message: fmt.Sprintf(format, args...)}
}

var (
	// ErrUnauthorized covers missing identity and cross-user access.
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Status: http.StatusUnauthorized, Message: "you do not have access to this resource"}
	// ErrForbidden covers callers whose role does not permit the operation.
	ErrForbidden = &AppError{Code: "FORBIDDEN", Status: http.StatusForbidden, Message: "insufficient role for this operation"}
	// ErrNotFound covers unknown services, appointments and conversations.
	ErrNotFound = &AppError{Code: "NOT_FOUND", Status: http.StatusNotFound, Message: "resource not found"}
	// ErrInvalidSignature covers webhook signature verification failures.
	ErrInvalidSignature = &AppError{Code: "INVALID_SIGNATURE", Status: http.StatusBadRequest, Message: "webhook signature verification failed"}
	// ErrInvalidInput covers payloads that bind but fail semantic checks.
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Status: http.StatusBadRequest, Message: "invalid request payload"}
	// ErrBackendUnavailable covers an unreachable data store or NLP backend.
	ErrBackendUnavailable = &AppError{Code: "BACKEND_UNAVAILABLE", Status: http.StatusServiceUnavailable, Message: "backing service unreachable"}
)

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

// RespondError maps a service error onto its HTTP response. Taxonomy errors
// keep their status and message; anything else becomes a 500.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{Message: appErr.Message})
		return
	}
	GetLogger().Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
}
