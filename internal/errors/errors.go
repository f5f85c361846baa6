package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error messages are part of the HTTP contract consumed by the web client,
// hence the client-facing casing.
var (
	// ErrEmailRequired is returned when a user create request carries no email.
	ErrEmailRequired = errors.New("Email is required")
	// ErrUserIDParamRequired is returned when the userId query parameter is absent.
	ErrUserIDParamRequired = errors.New("userId parameter required")
	// ErrInvalidUserIDParam is returned when the userId query parameter is not numeric.
	ErrInvalidUserIDParam = errors.New("Invalid userId parameter")
	// ErrUserNotFound is returned when no user row matches the requested id.
	ErrUserNotFound = errors.New("User not found")
	// ErrIdentityRequired is returned when the identity header is absent.
	ErrIdentityRequired = errors.New("User ID required in X-User-Id header")
	// ErrInvalidIdentity is returned when the identity header is not numeric.
	ErrInvalidIdentity = errors.New("Invalid user ID")
	// ErrOutfitFieldsMissing is returned when a save-outfit request misses a photo URL.
	ErrOutfitFieldsMissing = errors.New("Missing required fields")
	// ErrTryOnFieldsMissing is returned when a try-on request misses a required field.
	ErrTryOnFieldsMissing = errors.New("Missing userPhoto or clothingId")
	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("Invalid request body")
	// ErrInvalidPhotoPayload is returned when the uploaded photo cannot be decoded.
	ErrInvalidPhotoPayload = errors.New("Invalid photo payload")
	// ErrDependencyFailed wraps database or object-store failures.
	ErrDependencyFailed = errors.New("Upstream dependency failed")
	// ErrDependencyTimeout wraps database or object-store deadline expiries.
	ErrDependencyTimeout = errors.New("Upstream dependency timed out")
)

// ErrorResponse is the JSON error body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// WrapDependency classifies a collaborator failure while keeping the cause
// available for logging. Deadline expiry maps to the timeout class.
func WrapDependency(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrDependencyTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrDependencyFailed, err)
}

// MapErrorToHTTP maps domain errors to HTTP errors. Dependency failures get a
// generic body; the underlying cause stays server-side.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailRequired),
		errors.Is(err, ErrUserIDParamRequired),
		errors.Is(err, ErrInvalidUserIDParam),
		errors.Is(err, ErrInvalidIdentity),
		errors.Is(err, ErrOutfitFieldsMissing),
		errors.Is(err, ErrTryOnFieldsMissing),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrInvalidPhotoPayload):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIdentityRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDependencyTimeout):
		return NewHTTPError(http.StatusGatewayTimeout, ErrDependencyTimeout.Error())
	case errors.Is(err, ErrDependencyFailed):
		return NewHTTPError(http.StatusBadGateway, ErrDependencyFailed.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
