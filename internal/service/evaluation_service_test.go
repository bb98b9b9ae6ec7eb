package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEvaluationFixture(t *testing.T) (EvaluationService, *MockAudioFileStore, *MockAudioEvaluationStore) {
	t.Helper()
	files := &MockAudioFileStore{}
	evaluations := &MockAudioEvaluationStore{}
	svc, err := NewEvaluationService(files, evaluations, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		files.AssertExpectations(t)
		evaluations.AssertExpectations(t)
	})
	return svc, files, evaluations
}

func TestEvaluateAudio(t *testing.T) {
	svc, files, evaluations := newEvaluationFixture(t)
	files.On("GetByID", mock.Anything, "audio-1").Return(mustAudioFile(t, "audio-1", "user-1"), nil)
	evaluations.On("Save", mock.Anything, mock.MatchedBy(func(e domain.AudioEvaluation) bool {
		return e.AudioFileID() == "audio-1" && e.Score() == 85 && e.Feedback() == "Clear pronunciation."
	})).Return(nil)

	evaluation, err := svc.EvaluateAudio(context.Background(), EvaluateAudioInput{
		AudioFileID: "audio-1",
		UserID:      "user-1",
		Score:       85,
		Feedback:    "  Clear pronunciation.  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, evaluation.ID())
	assert.Equal(t, "user-1", evaluation.UserID())
}

func TestEvaluateAudioByOtherUser(t *testing.T) {
	svc, files, evaluations := newEvaluationFixture(t)
	files.On("GetByID", mock.Anything, "audio-1").Return(mustAudioFile(t, "audio-1", "user-1"), nil)

	_, err := svc.EvaluateAudio(context.Background(), EvaluateAudioInput{
		AudioFileID: "audio-1",
		UserID:      "user-2",
		Score:       50,
		Feedback:    "ok",
	})
	assert.ErrorIs(t, err, ErrNotOwned)
	evaluations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEvaluateAudioValidation(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		feedback string
	}{
		{name: "score above range", score: 101, feedback: "ok"},
		{name: "score below range", score: -1, feedback: "ok"},
		{name: "blank feedback", score: 50, feedback: "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, files, evaluations := newEvaluationFixture(t)
			files.On("GetByID", mock.Anything, "audio-1").Return(mustAudioFile(t, "audio-1", "user-1"), nil)

			_, err := svc.EvaluateAudio(context.Background(), EvaluateAudioInput{
				AudioFileID: "audio-1",
				UserID:      "user-1",
				Score:       tt.score,
				Feedback:    tt.feedback,
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
			evaluations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestEvaluateAudioMissingFile(t *testing.T) {
	svc, files, _ := newEvaluationFixture(t)
	files.On("GetByID", mock.Anything, "audio-404").Return(domain.AudioFile{}, store.ErrAudioFileNotFound)

	_, err := svc.EvaluateAudio(context.Background(), EvaluateAudioInput{
		AudioFileID: "audio-404",
		UserID:      "user-1",
		Score:       50,
		Feedback:    "ok",
	})
	assert.ErrorIs(t, err, ErrAudioFileNotFound)
}

func TestEvaluateAudioSaveFailure(t *testing.T) {
	svc, files, evaluations := newEvaluationFixture(t)
	boom := errors.New("deadlock detected")
	files.On("GetByID", mock.Anything, "audio-1").Return(mustAudioFile(t, "audio-1", "user-1"), nil)
	evaluations.On("Save", mock.Anything, mock.Anything).Return(boom)

	_, err := svc.EvaluateAudio(context.Background(), EvaluateAudioInput{
		AudioFileID: "audio-1",
		UserID:      "user-1",
		Score:       70,
		Feedback:    "good pace",
	})
	assert.ErrorIs(t, err, ErrEvaluationSaveFailed)
	assert.ErrorIs(t, err, boom)
}

func TestListEvaluations(t *testing.T) {
	svc, files, evaluations := newEvaluationFixture(t)
	files.On("GetByID", mock.Anything, "audio-1").Return(mustAudioFile(t, "audio-1", "user-1"), nil)
	evaluations.On("ListByAudioFileID", mock.Anything, "audio-1").Return([]domain.AudioEvaluation{}, nil)
	evaluations.On("ListByUserID", mock.Anything, "user-1").Return([]domain.AudioEvaluation{}, nil)

	list, err := svc.ListEvaluations(context.Background(), "audio-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.ListEvaluations(context.Background(), "audio-1", "user-2")
	assert.ErrorIs(t, err, ErrNotOwned)

	list, err = svc.ListUserEvaluations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.ListUserEvaluations(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
