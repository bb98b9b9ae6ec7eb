package service

import (
	"errors"
	"fmt"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = fmt.Errorf("%w: resource is owned by another user", domain.ErrPermissionDenied)

	// ErrNotAuthenticated indicates the request carries no signed-in identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrFileTooLarge is returned for uploads above MaxAudioFileSize.
	ErrFileTooLarge = errors.New("file size must be ≤ 10MB")

	// ErrUnsupportedMediaType is returned for uploads that are not audio.
	ErrUnsupportedMediaType = errors.New("only audio files are accepted")

	// ErrEvaluationSaveFailed is returned when an evaluation could not be persisted.
	ErrEvaluationSaveFailed = errors.New("failed to save evaluation")

	// ErrSignUpFailed is returned when the auth provider returned no identity.
	ErrSignUpFailed = errors.New("sign-up failed")

	ErrAudioFileNotFound   = fmt.Errorf("audio file %w", domain.ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrReadingTextNotFound = fmt.Errorf("reading text %w", domain.ErrNotFound)

	ErrReadingRecordNotFound = fmt.Errorf("reading record %w", domain.ErrNotFound)
)

// ServiceError wraps an unexpected collaborator failure with the operation
// that was running.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// notFound replaces a store not-found error with target, keeping other
// errors wrapped in a ServiceError.
func notFound(err, target error, service, operation string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return target
	}
	return NewServiceError(service, operation, "store call failed", err)
}
