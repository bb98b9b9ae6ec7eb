package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "user-1"
	testToken  = "valid-token"
)

var fixtureTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type testServer struct {
	handler  http.Handler
	auth     *MockAuthService
	texts    *MockReadingTextService
	records  *MockReadingRecordService
	audio    *MockAudioService
	evals    *MockEvaluationService
	logs     *logger.TestLogBuffer
	filesDir string
}

type tokenAuthenticator func(ctx context.Context, token string) (*auth.Claims, error)

func (f tokenAuthenticator) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	return f(ctx, token)
}

func newTestServer(t *testing.T, maxUploadBytes int64) *testServer {
	t.Helper()
	log, buf := logger.GetTestLogger(t)

	ts := &testServer{
		auth:     &MockAuthService{},
		texts:    &MockReadingTextService{},
		records:  &MockReadingRecordService{},
		audio:    &MockAudioService{},
		evals:    &MockEvaluationService{},
		logs:     buf,
		filesDir: t.TempDir(),
	}

	authHandler, err := NewAuthHandler(ts.auth, log)
	require.NoError(t, err)
	textHandler, err := NewTextHandler(ts.texts, ts.records, log)
	require.NoError(t, err)
	audioHandler, err := NewAudioHandler(ts.audio, ts.evals, maxUploadBytes, log)
	require.NoError(t, err)

	ts.handler = NewRouter(RouterDeps{
		Auth:  authHandler,
		Texts: textHandler,
		Audio: audioHandler,
		Authenticator: tokenAuthenticator(func(_ context.Context, token string) (*auth.Claims, error) {
			if token != testToken {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: testUserID, Email: "reader@example.com", SessionID: "session-1"}, nil
		}),
		Logger:   log,
		FilesDir: ts.filesDir,
	})

	t.Cleanup(func() {
		ts.auth.AssertExpectations(t)
		ts.texts.AssertExpectations(t)
		ts.records.AssertExpectations(t)
		ts.audio.AssertExpectations(t)
		ts.evals.AssertExpectations(t)
	})
	return ts
}

// do sends a request through the router. A non-nil body is JSON encoded
// unless it is already an io.Reader.
func (ts *testServer) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func mustText(t *testing.T, id, content string) domain.ReadingText {
	t.Helper()
	text, err := domain.NewReadingText(domain.ReadingTextParams{
		ID:         id,
		Content:    content,
		Difficulty: "BEGINNER",
		Category:   "STORY",
		CreatedAt:  fixtureTime,
		UpdatedAt:  fixtureTime,
	})
	require.NoError(t, err)
	return text
}

func mustRecord(t *testing.T, id, textID string, score int) domain.ReadingRecord {
	t.Helper()
	record, err := domain.NewReadingRecord(domain.ReadingRecordParams{
		ID:            id,
		ReadingTextID: textID,
		AudioURL:      "https://cdn.example.com/take.webm",
		Duration:      30,
		Score:         score,
		CreatedAt:     fixtureTime,
		UpdatedAt:     fixtureTime,
	})
	require.NoError(t, err)
	return record
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

func mustEvaluation(t *testing.T, id, audioFileID string, score int) domain.AudioEvaluation {
	t.Helper()
	evaluation, err := domain.NewAudioEvaluation(domain.AudioEvaluationParams{
		ID:          id,
		AudioFileID: audioFileID,
		UserID:      testUserID,
		Score:       score,
		Feedback:    "clear pronunciation",
		CreatedAt:   fixtureTime,
		UpdatedAt:   fixtureTime,
	})
	require.NoError(t, err)
	return evaluation
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
