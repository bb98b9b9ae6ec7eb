package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kami8ma8810/next-architecture-learning/internal/api/shared"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
)

const (
	// multipartOverhead allows for form fields and part headers on top of
	// the file itself.
	multipartOverhead = 1 << 20

	// multipartMemory is held in memory before parts spill to temp files.
	multipartMemory = 4 << 20

	genericContentType = "application/octet-stream"
)

// AudioHandler handles audio upload, listing, deletion and evaluation requests.
type AudioHandler struct {
	audio          service.AudioService
	evaluations    service.EvaluationService
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewAudioHandler creates a new AudioHandler. maxUploadBytes bounds the
// request body read for uploads; the service applies its own file size rule.
func NewAudioHandler(
	audio service.AudioService,
	evaluations service.EvaluationService,
	maxUploadBytes int64,
	log *slog.Logger,
) (*AudioHandler, error) {
	if audio == nil {
		return nil, domain.NewValidationError("audio", "cannot be nil")
	}
	if evaluations == nil {
		return nil, domain.NewValidationError("evaluations", "cannot be nil")
	}
	if log == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil")
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = service.MaxAudioFileSize
	}
	return &AudioHandler{
		audio:          audio,
		evaluations:    evaluations,
		maxUploadBytes: maxUploadBytes,
		logger:         log.With(slog.String("component", "audio_handler")),
	}, nil
}

// UploadAudio handles POST /audio as multipart/form-data with the fields
// file, reading_text_id and duration.
func (h *AudioHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleAPIError(w, r, fmt.Errorf("%w: %w", service.ErrFileTooLarge, err), "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn("failed to remove multipart temp files", slog.String("error", err.Error()))
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("file", "is required"), "")
		return
	}
	defer file.Close()

	duration, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("duration")), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		HandleAPIError(w, r, domain.NewValidationError("duration", "must be a number of seconds"), "")
		return
	}

	contentType, err := uploadContentType(header, file)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read upload")
		return
	}

	audioFile, err := h.audio.UploadAudio(r.Context(), service.UploadAudioInput{
		UserID:        userID,
		ReadingTextID: strings.TrimSpace(r.FormValue("reading_text_id")),
		Duration:      duration,
		FileName:      header.Filename,
		MimeType:      contentType,
		Size:          header.Size,
		Body:          file,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to upload audio")
		return
	}

	log.Info("audio uploaded",
		slog.String("audio_file_id", audioFile.ID()),
		slog.Int64("size", audioFile.FileSize()))
	shared.RespondWithJSON(w, r, http.StatusCreated, audioFileToResponse(audioFile))
}

// uploadContentType returns the declared part content type, sniffing the
// content when the client sent none or a generic one.
func uploadContentType(header *multipart.FileHeader, file multipart.File) (string, error) {
	declared := strings.TrimSpace(header.Header.Get("Content-Type"))
	if declared != "" && !strings.HasPrefix(declared, genericContentType) {
		return declared, nil
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("sniff content type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	// Containers shared by audio and video are reported as video.
	for _, alias := range []string{"audio/webm", "audio/ogg", "audio/mp4"} {
		if detected.Is(alias) {
			return alias, nil
		}
	}
	return detected.String(), nil
}

// ListAudio handles GET /audio?reading_text_id=.
func (h *AudioHandler) ListAudio(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var (
		files []domain.AudioFile
		err   error
	)
	if textID := strings.TrimSpace(r.URL.Query().Get("reading_text_id")); textID != "" {
		files, err = h.audio.ListAudioForText(r.Context(), userID, textID)
	} else {
		files, err = h.audio.ListUserAudio(r.Context(), userID)
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list audio files")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(files, audioFileToResponse))
}

// GetAudio handles GET /audio/{id}.
func (h *AudioHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	file, err := h.audio.GetAudio(r.Context(), id, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get audio file")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, audioFileToResponse(file))
}

// DeleteAudio handles DELETE /audio/{id}.
func (h *AudioHandler) DeleteAudio(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.audio.DeleteAudio(r.Context(), id, userID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete audio file")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EvaluateAudio handles POST /audio/{id}/evaluations.
func (h *AudioHandler) EvaluateAudio(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	var req EvaluateAudioRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	evaluation, err := h.evaluations.EvaluateAudio(r.Context(), service.EvaluateAudioInput{
		AudioFileID: id,
		UserID:      userID,
		Score:       *req.Score,
		Feedback:    req.Feedback,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save evaluation")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, evaluationToResponse(evaluation))
}

// ListEvaluations handles GET /audio/{id}/evaluations.
func (h *AudioHandler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	evaluations, err := h.evaluations.ListEvaluations(r.Context(), id, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list evaluations")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(evaluations, evaluationToResponse))
}

// ListUserEvaluations handles GET /evaluations.
func (h *AudioHandler) ListUserEvaluations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	evaluations, err := h.evaluations.ListUserEvaluations(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list evaluations")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(evaluations, evaluationToResponse))
}
