package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kami8ma8810/next-architecture-learning/internal/api/shared"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("score", "must be between 0 and 100"), http.StatusBadRequest},
		{"invalid entity", fmt.Errorf("%w: fk", store.ErrInvalidEntity), http.StatusBadRequest},
		{"not found", store.ErrAudioFileNotFound, http.StatusNotFound},
		{"service not found", service.ErrUserNotFound, http.StatusNotFound},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"not authenticated", service.ErrNotAuthenticated, http.StatusUnauthorized},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"revoked session", auth.ErrSessionRevoked, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"too large", service.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unsupported media", service.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"duplicate email", store.ErrEmailExists, http.StatusConflict},
		{"duplicate username", store.ErrUsernameExists, http.StatusConflict},
		{
			"text still referenced",
			service.NewServiceError("reading text", "DeleteText", "store call failed", store.ErrReadingTextInUse),
			http.StatusConflict,
		},
		{
			"wrapped in service error",
			service.NewServiceError("audio", "GetAudio", "lookup", service.ErrAudioFileNotFound),
			http.StatusNotFound,
		},
		{"evaluation save failure", service.ErrEvaluationSaveFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Audio file not found", GetSafeErrorMessage(service.ErrAudioFileNotFound))
	assert.Equal(t, "Reading text not found", GetSafeErrorMessage(store.ErrReadingTextNotFound))
	assert.Equal(t, "Username already exists", GetSafeErrorMessage(store.ErrUsernameExists))
	assert.Equal(t, "Reading text has uploaded recordings", GetSafeErrorMessage(store.ErrReadingTextInUse))
	assert.Equal(t, "Invalid email or password", GetSafeErrorMessage(auth.ErrInvalidCredentials))
	assert.Equal(t, "Invalid score: must be between 0 and 100",
		GetSafeErrorMessage(domain.NewValidationError("score", "must be between 0 and 100")))

	internal := errors.New("pq: relation audio_files does not exist at /srv/app/db.go:42")
	msg := GetSafeErrorMessage(internal)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "audio_files")
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(SignInRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email: invalid email format", SanitizeValidationError(err))

	err = shared.ValidateRequest(CreateTextRequest{Content: "hi", Difficulty: "EXPERT", Category: "STORY"})
	require.Error(t, err)
	assert.Equal(t, "Invalid difficulty: invalid value", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	log, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(shared.SetTraceID(httptest.NewRequest(http.MethodGet, "/", nil).Context()), log)

	t.Run("internal error uses fallback and redacts log", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/audio", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		HandleAPIError(w, r, errors.New("dial postgres://app:hunter2@db:5432/readaloud"), "Failed to list audio files")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody[shared.ErrorResponse](t, w)
		assert.Equal(t, "Failed to list audio files", body.Error)
		assert.NotEmpty(t, body.TraceID)
		assert.NotContains(t, buf.String(), "hunter2")
	})

	t.Run("known error keeps safe message", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/audio/a1", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		HandleAPIError(w, r, service.ErrAudioFileNotFound, "Failed to get audio file")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Audio file not found", decodeBody[shared.ErrorResponse](t, w).Error)
	})
}
