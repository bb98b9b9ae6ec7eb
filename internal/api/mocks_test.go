package api

import (
	"context"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, in service.SignUpInput) (service.AuthResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(service.AuthResult), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(service.AuthResult), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error) {
	args := m.Called(ctx, upd)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockReadingTextService struct {
	mock.Mock
}

func (m *MockReadingTextService) CreateText(
	ctx context.Context,
	in service.CreateTextInput,
) (domain.ReadingText, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.ReadingText), args.Error(1)
}

func (m *MockReadingTextService) GetText(ctx context.Context, id string) (domain.ReadingText, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReadingText), args.Error(1)
}

func (m *MockReadingTextService) ListTexts(
	ctx context.Context,
	filter store.ReadingTextFilter,
) ([]domain.ReadingText, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ReadingText), args.Error(1)
}

func (m *MockReadingTextService) UpdateTextContent(
	ctx context.Context,
	id, content string,
) (domain.ReadingText, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(domain.ReadingText), args.Error(1)
}

func (m *MockReadingTextService) DeleteText(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockReadingRecordService struct {
	mock.Mock
}

func (m *MockReadingRecordService) CreateRecord(
	ctx context.Context,
	in service.CreateRecordInput,
) (domain.ReadingRecord, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordService) GetRecord(ctx context.Context, id string) (domain.ReadingRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordService) ListRecordsForText(
	ctx context.Context,
	readingTextID string,
) ([]domain.ReadingRecord, error) {
	args := m.Called(ctx, readingTextID)
	return args.Get(0).([]domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordService) UpdateRecordScore(
	ctx context.Context,
	id string,
	score int,
) (domain.ReadingRecord, error) {
	args := m.Called(ctx, id, score)
	return args.Get(0).(domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordService) DeleteRecord(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAudioService struct {
	mock.Mock
}

func (m *MockAudioService) UploadAudio(ctx context.Context, in service.UploadAudioInput) (domain.AudioFile, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.AudioFile), args.Error(1)
}

func (m *MockAudioService) DeleteAudio(ctx context.Context, audioFileID, userID string) error {
	return m.Called(ctx, audioFileID, userID).Error(0)
}

func (m *MockAudioService) GetAudio(ctx context.Context, audioFileID, userID string) (domain.AudioFile, error) {
	args := m.Called(ctx, audioFileID, userID)
	return args.Get(0).(domain.AudioFile), args.Error(1)
}

func (m *MockAudioService) ListUserAudio(ctx context.Context, userID string) ([]domain.AudioFile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AudioFile), args.Error(1)
}

func (m *MockAudioService) ListAudioForText(
	ctx context.Context,
	userID, readingTextID string,
) ([]domain.AudioFile, error) {
	args := m.Called(ctx, userID, readingTextID)
	return args.Get(0).([]domain.AudioFile), args.Error(1)
}

type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) EvaluateAudio(
	ctx context.Context,
	in service.EvaluateAudioInput,
) (domain.AudioEvaluation, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.AudioEvaluation), args.Error(1)
}

func (m *MockEvaluationService) ListEvaluations(
	ctx context.Context,
	audioFileID, userID string,
) ([]domain.AudioEvaluation, error) {
	args := m.Called(ctx, audioFileID, userID)
	return args.Get(0).([]domain.AudioEvaluation), args.Error(1)
}

func (m *MockEvaluationService) ListUserEvaluations(
	ctx context.Context,
	userID string,
) ([]domain.AudioEvaluation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AudioEvaluation), args.Error(1)
}
