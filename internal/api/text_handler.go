package api

import (
	"log/slog"
	"net/http"

	"github.com/kami8ma8810/next-architecture-learning/internal/api/shared"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// TextHandler handles reading text and reading record requests.
type TextHandler struct {
	texts   service.ReadingTextService
	records service.ReadingRecordService
	logger  *slog.Logger
}

// NewTextHandler creates a new TextHandler with the given dependencies.
func NewTextHandler(
	texts service.ReadingTextService,
	records service.ReadingRecordService,
	log *slog.Logger,
) (*TextHandler, error) {
	if texts == nil {
		return nil, domain.NewValidationError("texts", "cannot be nil")
	}
	if records == nil {
		return nil, domain.NewValidationError("records", "cannot be nil")
	}
	if log == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil")
	}
	return &TextHandler{
		texts:   texts,
		records: records,
		logger:  log.With(slog.String("component", "text_handler")),
	}, nil
}

// ListTexts handles GET /texts?difficulty=&category=&limit=&offset=.
func (h *TextHandler) ListTexts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	offset, err := queryUint(r, "offset")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	q := r.URL.Query()
	texts, err := h.texts.ListTexts(r.Context(), store.ReadingTextFilter{
		Difficulty: domain.Difficulty(q.Get("difficulty")),
		Category:   domain.Category(q.Get("category")),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reading texts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(texts, textToResponse))
}

// GetText handles GET /texts/{id}.
func (h *TextHandler) GetText(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	text, err := h.texts.GetText(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get reading text")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, textToResponse(text))
}

// CreateText handles POST /texts.
func (h *TextHandler) CreateText(w http.ResponseWriter, r *http.Request) {
	var req CreateTextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	text, err := h.texts.CreateText(r.Context(), service.CreateTextInput{
		Content:    req.Content,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create reading text")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("reading text created",
		slog.String("reading_text_id", text.ID()))
	shared.RespondWithJSON(w, r, http.StatusCreated, textToResponse(text))
}

// UpdateText handles PUT /texts/{id}.
func (h *TextHandler) UpdateText(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	var req UpdateTextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	text, err := h.texts.UpdateTextContent(r.Context(), id, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update reading text")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, textToResponse(text))
}

// DeleteText handles DELETE /texts/{id}.
func (h *TextHandler) DeleteText(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.texts.DeleteText(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete reading text")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateRecord handles POST /texts/{id}/records.
func (h *TextHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	textID, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	var req CreateRecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.records.CreateRecord(r.Context(), service.CreateRecordInput{
		ReadingTextID: textID,
		AudioURL:      req.AudioURL,
		Duration:      req.Duration,
		Score:         req.Score,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create reading record")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, recordToResponse(record))
}

// ListRecords handles GET /texts/{id}/records.
func (h *TextHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	textID, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	records, err := h.records.ListRecordsForText(r.Context(), textID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reading records")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(records, recordToResponse))
}

// GetRecord handles GET /records/{id}.
func (h *TextHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	record, err := h.records.GetRecord(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get reading record")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// UpdateRecordScore handles PATCH /records/{id}.
func (h *TextHandler) UpdateRecordScore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	var req UpdateRecordScoreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	record, err := h.records.UpdateRecordScore(r.Context(), id, *req.Score)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update reading record")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, recordToResponse(record))
}

// DeleteRecord handles DELETE /records/{id}.
func (h *TextHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.records.DeleteRecord(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete reading record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
