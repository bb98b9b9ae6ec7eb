package service

import (
	"context"
	"io"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockReadingTextStore mocks store.ReadingTextStore.
type MockReadingTextStore struct {
	mock.Mock
}

func (m *MockReadingTextStore) GetByID(ctx context.Context, id string) (domain.ReadingText, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReadingText), args.Error(1)
}

func (m *MockReadingTextStore) List(
	ctx context.Context,
	filter store.ReadingTextFilter,
) ([]domain.ReadingText, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ReadingText), args.Error(1)
}

func (m *MockReadingTextStore) Save(ctx context.Context, text domain.ReadingText) error {
	return m.Called(ctx, text).Error(0)
}

func (m *MockReadingTextStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockReadingRecordStore mocks store.ReadingRecordStore.
type MockReadingRecordStore struct {
	mock.Mock
}

func (m *MockReadingRecordStore) GetByID(ctx context.Context, id string) (domain.ReadingRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordStore) List(ctx context.Context) ([]domain.ReadingRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordStore) ListByReadingTextID(
	ctx context.Context,
	readingTextID string,
) ([]domain.ReadingRecord, error) {
	args := m.Called(ctx, readingTextID)
	return args.Get(0).([]domain.ReadingRecord), args.Error(1)
}

func (m *MockReadingRecordStore) Save(ctx context.Context, record domain.ReadingRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockReadingRecordStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockAudioFileStore mocks store.AudioFileStore.
type MockAudioFileStore struct {
	mock.Mock
}

func (m *MockAudioFileStore) GetByID(ctx context.Context, id string) (domain.AudioFile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AudioFile), args.Error(1)
}

func (m *MockAudioFileStore) ListByUserID(ctx context.Context, userID string) ([]domain.AudioFile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AudioFile), args.Error(1)
}

func (m *MockAudioFileStore) ListByReadingTextID(
	ctx context.Context,
	readingTextID string,
) ([]domain.AudioFile, error) {
	args := m.Called(ctx, readingTextID)
	return args.Get(0).([]domain.AudioFile), args.Error(1)
}

func (m *MockAudioFileStore) Save(ctx context.Context, file domain.AudioFile) error {
	return m.Called(ctx, file).Error(0)
}

func (m *MockAudioFileStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockAudioEvaluationStore mocks store.AudioEvaluationStore.
type MockAudioEvaluationStore struct {
	mock.Mock
}

func (m *MockAudioEvaluationStore) GetByID(ctx context.Context, id string) (domain.AudioEvaluation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AudioEvaluation), args.Error(1)
}

func (m *MockAudioEvaluationStore) ListByAudioFileID(
	ctx context.Context,
	audioFileID string,
) ([]domain.AudioEvaluation, error) {
	args := m.Called(ctx, audioFileID)
	return args.Get(0).([]domain.AudioEvaluation), args.Error(1)
}

func (m *MockAudioEvaluationStore) ListByUserID(
	ctx context.Context,
	userID string,
) ([]domain.AudioEvaluation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AudioEvaluation), args.Error(1)
}

func (m *MockAudioEvaluationStore) Save(ctx context.Context, evaluation domain.AudioEvaluation) error {
	return m.Called(ctx, evaluation).Error(0)
}

func (m *MockAudioEvaluationStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserStore mocks store.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserStore) Save(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockObjectStorage mocks ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, r)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) PublicURL(key string) string {
	return m.Called(key).String(0)
}

func (m *MockObjectStorage) Remove(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

// MockAuthProvider mocks AuthProvider.
type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) SignUp(ctx context.Context, email, password string) (*auth.Identity, error) {
	args := m.Called(ctx, email, password)
	id, _ := args.Get(0).(*auth.Identity)
	return id, args.Error(1)
}

func (m *MockAuthProvider) SignInWithPassword(
	ctx context.Context,
	email, password string,
) (*auth.Identity, error) {
	args := m.Called(ctx, email, password)
	id, _ := args.Get(0).(*auth.Identity)
	return id, args.Error(1)
}

func (m *MockAuthProvider) SignOut(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthProvider) CurrentIdentity(ctx context.Context) (*auth.Identity, error) {
	args := m.Called(ctx)
	id, _ := args.Get(0).(*auth.Identity)
	return id, args.Error(1)
}
