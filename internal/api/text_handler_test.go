package api

import (
	"net/http"
	"testing"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListTexts(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.texts.On("ListTexts", mock.Anything, store.ReadingTextFilter{
			Difficulty: domain.DifficultyBeginner,
			Category:   domain.CategoryStory,
			Limit:      10,
			Offset:     20,
		}).Return([]domain.ReadingText{mustText(t, "text-1", "Hello there.")}, nil)

		w := ts.do(t, http.MethodGet, "/api/texts?difficulty=BEGINNER&category=STORY&limit=10&offset=20", nil, false)

		require.Equal(t, http.StatusOK, w.Code)
		texts := decodeBody[[]TextResponse](t, w)
		require.Len(t, texts, 1)
		assert.Equal(t, "Hello there.", texts[0].Content)
		assert.Equal(t, "BEGINNER", texts[0].Difficulty)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.texts.On("ListTexts", mock.Anything, store.ReadingTextFilter{}).Return([]domain.ReadingText(nil), nil)

		w := ts.do(t, http.MethodGet, "/api/texts", nil, false)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		ts := newTestServer(t, 0)

		w := ts.do(t, http.MethodGet, "/api/texts?limit=-1", nil, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetText(t *testing.T) {
	ts := newTestServer(t, 0)
	ts.texts.On("GetText", mock.Anything, "text-1").Return(mustText(t, "text-1", "Hello."), nil)
	ts.texts.On("GetText", mock.Anything, "missing").Return(domain.ReadingText{}, service.ErrReadingTextNotFound)

	w := ts.do(t, http.MethodGet, "/api/texts/text-1", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text-1", decodeBody[TextResponse](t, w).ID)

	w = ts.do(t, http.MethodGet, "/api/texts/missing", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateText(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		ts := newTestServer(t, 0)

		w := ts.do(t, http.MethodPost, "/api/texts", CreateTextRequest{
			Content: "Hello.", Difficulty: "BEGINNER", Category: "STORY",
		}, false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates text", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.texts.On("CreateText", mock.Anything, service.CreateTextInput{
			Content: "Hello.", Difficulty: "BEGINNER", Category: "STORY",
		}).Return(mustText(t, "text-9", "Hello."), nil)

		w := ts.do(t, http.MethodPost, "/api/texts", CreateTextRequest{
			Content: "Hello.", Difficulty: "BEGINNER", Category: "STORY",
		}, true)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "text-9", decodeBody[TextResponse](t, w).ID)
	})

	t.Run("content too long is a validation error", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.texts.On("CreateText", mock.Anything, mock.Anything).
			Return(domain.ReadingText{}, domain.NewValidationError("content", "cannot be longer than 10000 characters"))

		w := ts.do(t, http.MethodPost, "/api/texts", CreateTextRequest{
			Content: "long", Difficulty: "ADVANCED", Category: "ESSAY",
		}, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cannot be longer than 10000 characters")
	})
}

func TestUpdateAndDeleteText(t *testing.T) {
	ts := newTestServer(t, 0)
	ts.texts.On("UpdateTextContent", mock.Anything, "text-1", "Updated.").
		Return(mustText(t, "text-1", "Updated."), nil)
	ts.texts.On("DeleteText", mock.Anything, "text-1").Return(nil)

	w := ts.do(t, http.MethodPut, "/api/texts/text-1", UpdateTextRequest{Content: "Updated."}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Updated.", decodeBody[TextResponse](t, w).Content)

	w = ts.do(t, http.MethodDelete, "/api/texts/text-1", nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTextWithRecordingsConflicts(t *testing.T) {
	ts := newTestServer(t, 0)
	ts.texts.On("DeleteText", mock.Anything, "text-1").
		Return(service.NewServiceError("reading text", "DeleteText", "store call failed", store.ErrReadingTextInUse))

	w := ts.do(t, http.MethodDelete, "/api/texts/text-1", nil, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Reading text has uploaded recordings")
}

func TestRecords(t *testing.T) {
	t.Run("create against missing text", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.records.On("CreateRecord", mock.Anything, service.CreateRecordInput{
			ReadingTextID: "missing",
			AudioURL:      "https://cdn.example.com/take.webm",
			Duration:      30,
			Score:         80,
		}).Return(domain.ReadingRecord{}, service.ErrReadingTextNotFound)

		w := ts.do(t, http.MethodPost, "/api/texts/missing/records", CreateRecordRequest{
			AudioURL: "https://cdn.example.com/take.webm", Duration: 30, Score: 80,
		}, true)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.records.On("CreateRecord", mock.Anything, mock.Anything).Return(mustRecord(t, "rec-1", "text-1", 80), nil)

		w := ts.do(t, http.MethodPost, "/api/texts/text-1/records", CreateRecordRequest{
			AudioURL: "https://cdn.example.com/take.webm", Duration: 30, Score: 80,
		}, true)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 80, decodeBody[RecordResponse](t, w).Score)
	})

	t.Run("list get update delete", func(t *testing.T) {
		ts := newTestServer(t, 0)
		ts.records.On("ListRecordsForText", mock.Anything, "text-1").
			Return([]domain.ReadingRecord{mustRecord(t, "rec-1", "text-1", 80)}, nil)
		ts.records.On("GetRecord", mock.Anything, "rec-1").Return(mustRecord(t, "rec-1", "text-1", 80), nil)
		ts.records.On("UpdateRecordScore", mock.Anything, "rec-1", 95).Return(mustRecord(t, "rec-1", "text-1", 95), nil)
		ts.records.On("DeleteRecord", mock.Anything, "rec-1").Return(nil)

		w := ts.do(t, http.MethodGet, "/api/texts/text-1/records", nil, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]RecordResponse](t, w), 1)

		w = ts.do(t, http.MethodGet, "/api/records/rec-1", nil, true)
		require.Equal(t, http.StatusOK, w.Code)

		score := 95
		w = ts.do(t, http.MethodPatch, "/api/records/rec-1", UpdateRecordScoreRequest{Score: &score}, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 95, decodeBody[RecordResponse](t, w).Score)

		w = ts.do(t, http.MethodDelete, "/api/records/rec-1", nil, true)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("score is required", func(t *testing.T) {
		ts := newTestServer(t, 0)

		w := ts.do(t, http.MethodPatch, "/api/records/rec-1", UpdateRecordScoreRequest{}, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
