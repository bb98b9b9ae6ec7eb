package store

import (
	"errors"
	"fmt"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// It wraps domain.ErrNotFound so callers above the store can match on either.
	ErrNotFound = fmt.Errorf("entity %w", domain.ErrNotFound)

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a profile with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a row because of
	// a check, not-null, or foreign key constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInUse is returned when an entity cannot be deleted because other
	// rows still reference it.
	ErrInUse = errors.New("entity is still referenced")

	// ErrTransactionFailed is returned when a database transaction fails
	// to begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	ErrReadingTextNotFound     = fmt.Errorf("%w: reading text", ErrNotFound)
	ErrReadingRecordNotFound   = fmt.Errorf("%w: reading record", ErrNotFound)
	ErrAudioFileNotFound       = fmt.Errorf("%w: audio file", ErrNotFound)
	ErrAudioEvaluationNotFound = fmt.Errorf("%w: audio evaluation", ErrNotFound)
	ErrUserNotFound            = fmt.Errorf("%w: user", ErrNotFound)
	ErrCredentialNotFound      = fmt.Errorf("%w: credential", ErrNotFound)
	ErrSessionNotFound         = fmt.Errorf("%w: session", ErrNotFound)

	// ErrReadingTextInUse indicates that audio files still reference the text.
	ErrReadingTextInUse = fmt.Errorf("%w: reading text", ErrInUse)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that credentials for the email already exist.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrUsernameExists indicates that another profile already uses the username.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "audio_file", "user")
	Operation string // The operation that failed (e.g., "save", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
