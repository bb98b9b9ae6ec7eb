package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/kami8ma8810/next-architecture-learning/internal/api/shared"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrSessionRevoked),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized

	// Upload limits
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType

	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInUse):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that carries
// no internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrSessionRevoked):
		return "Session has ended"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrNotAuthenticated):
		return "Authentication required"

	case errors.Is(err, service.ErrFileTooLarge):
		return "File size must be 10MB or less"
	case errors.Is(err, service.ErrUnsupportedMediaType):
		return "Only audio files are accepted"

	case errors.Is(err, domain.ErrPermissionDenied):
		return "You do not have access to this resource"

	case errors.Is(err, service.ErrAudioFileNotFound),
		errors.Is(err, store.ErrAudioFileNotFound):
		return "Audio file not found"
	case errors.Is(err, service.ErrReadingTextNotFound),
		errors.Is(err, store.ErrReadingTextNotFound):
		return "Reading text not found"
	case errors.Is(err, service.ErrReadingRecordNotFound),
		errors.Is(err, store.ErrReadingRecordNotFound):
		return "Reading record not found"
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, domain.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrReadingTextInUse):
		return "Reading text has uploaded recordings"
	case errors.Is(err, store.ErrInUse):
		return "Resource is still in use"

	case errors.Is(err, domain.ErrValidation):
		return SanitizeValidationError(err)
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, service.ErrEvaluationSaveFailed):
		return "Failed to save evaluation"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns request and domain validation failures into
// a short message naming the offending field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe), validationTagMessage(fe.Tag()))
	}

	if ve, ok := domain.IsValidationError(err); ok {
		if ve.Field == "" {
			return "Invalid request: " + ve.Message
		}
		return fmt.Sprintf("Invalid %s: %s", ve.Field, ve.Message)
	}

	return "Validation error"
}

// jsonFieldName prefers the json tag name registered on the validator.
func jsonFieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return fe.StructField()
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gte":
		return "too short or too small"
	case "max", "lte":
		return "too long or too large"
	case "oneof":
		return "invalid value"
	case "url":
		return "invalid URL"
	default:
		return "validation failed"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// response. fallback replaces the generic message for 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	if status == http.StatusForbidden || status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
