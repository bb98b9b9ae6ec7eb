package service

import (
	"testing"
	"time"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mustText(t *testing.T, id string) domain.ReadingText {
	t.Helper()
	text, err := domain.NewReadingText(domain.ReadingTextParams{
		ID:         id,
		Content:    "The quick brown fox jumps over the lazy dog.",
		Difficulty: "BEGINNER",
		Category:   "STORY",
		CreatedAt:  fixtureTime,
		UpdatedAt:  fixtureTime,
	})
	require.NoError(t, err)
	return text
}

func mustAudioFile(t *testing.T, id, ownerID string) domain.AudioFile {
	t.Helper()
	file, err := domain.NewAudioFile(domain.AudioFileParams{
		ID:            id,
		UserID:        ownerID,
		ReadingTextID: "text-1",
		FilePath:      ownerID + "/text-1/1740819600000-take.webm",
		PublicURL:     "https://cdn.example.com/" + ownerID + "/text-1/1740819600000-take.webm",
		Duration:      12.5,
		FileSize:      2048,
		MimeType:      "audio/webm",
		CreatedAt:     fixtureTime,
		UpdatedAt:     fixtureTime,
	})
	require.NoError(t, err)
	return file
}

func mustUser(t *testing.T, id, username string) domain.User {
	t.Helper()
	user, err := domain.NewUser(domain.UserParams{
		ID:        id,
		Username:  username,
		CreatedAt: fixtureTime,
		UpdatedAt: fixtureTime,
	})
	require.NoError(t, err)
	return user
}
