package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// MaxAudioFileSize is the largest accepted upload, 10 MiB.
const MaxAudioFileSize int64 = 10 << 20

// UploadAudioInput describes an audio upload by UserID.
type UploadAudioInput struct {
	UserID        string
	ReadingTextID string
	Duration      float64
	FileName      string
	MimeType      string
	Size          int64
	Body          io.Reader
}

// AudioService manages uploaded recordings.
type AudioService interface {
	// UploadAudio stores the recording and its metadata. Size and media type
	// are checked before any I/O.
	UploadAudio(ctx context.Context, in UploadAudioInput) (domain.AudioFile, error)

	// DeleteAudio removes the stored object, then the metadata. Only the
	// owner may delete a file.
	DeleteAudio(ctx context.Context, audioFileID, userID string) error

	GetAudio(ctx context.Context, audioFileID, userID string) (domain.AudioFile, error)
	ListUserAudio(ctx context.Context, userID string) ([]domain.AudioFile, error)
	ListAudioForText(ctx context.Context, userID, readingTextID string) ([]domain.AudioFile, error)
}

type audioServiceImpl struct {
	files    store.AudioFileStore
	texts    store.ReadingTextStore
	storage  ObjectStorage
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewAudioService creates a new AudioService.
func NewAudioService(
	files store.AudioFileStore,
	texts store.ReadingTextStore,
	storage ObjectStorage,
	log *slog.Logger,
) (AudioService, error) {
	if files == nil {
		return nil, domain.NewValidationError("files", "cannot be nil")
	}
	if texts == nil {
		return nil, domain.NewValidationError("texts", "cannot be nil")
	}
	if storage == nil {
		return nil, domain.NewValidationError("storage", "cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &audioServiceImpl{
		files:    files,
		texts:    texts,
		storage:  storage,
		logger:   log.With(slog.String("component", "audio_service")),
		timeFunc: time.Now,
	}, nil
}

func (s *audioServiceImpl) UploadAudio(ctx context.Context, in UploadAudioInput) (domain.AudioFile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if in.UserID == "" {
		return domain.AudioFile{}, ErrNotAuthenticated
	}
	if in.Size > MaxAudioFileSize {
		return domain.AudioFile{}, ErrFileTooLarge
	}
	mediaType, err := audioMediaType(in.MimeType)
	if err != nil {
		return domain.AudioFile{}, err
	}
	if in.Size <= 0 || in.Body == nil {
		return domain.AudioFile{}, domain.NewValidationError("file", "cannot be empty")
	}
	textID, err := domain.NewReadingTextID(in.ReadingTextID)
	if err != nil {
		return domain.AudioFile{}, err
	}
	if err := domain.ValidateAudioDuration(in.Duration); err != nil {
		return domain.AudioFile{}, err
	}

	if _, err := s.texts.GetByID(ctx, textID.String()); err != nil {
		return domain.AudioFile{}, notFound(err, ErrReadingTextNotFound, "audio", "UploadAudio")
	}

	key := objectKey(in.UserID, textID.String(), s.timeFunc(), in.FileName)
	stored, err := s.storage.Upload(ctx, key, mediaType, in.Body)
	if err != nil {
		log.Error("failed to upload audio",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return domain.AudioFile{}, NewServiceError("audio", "UploadAudio", "failed to store audio", err)
	}

	file, err := domain.NewAudioFile(domain.AudioFileParams{
		ID:            uuid.NewString(),
		UserID:        in.UserID,
		ReadingTextID: textID.String(),
		FilePath:      stored,
		PublicURL:     s.storage.PublicURL(stored),
		Duration:      in.Duration,
		FileSize:      in.Size,
		MimeType:      mediaType,
	})
	if err == nil {
		err = s.files.Save(ctx, file)
	}
	if err != nil {
		// The stored object is left in place.
		log.Error("audio stored but metadata not saved; object is orphaned",
			slog.String("key", stored),
			slog.String("user_id", in.UserID),
			slog.String("error", err.Error()))
		return domain.AudioFile{}, NewServiceError("audio", "UploadAudio", "failed to save metadata", err)
	}

	log.Info("audio uploaded",
		slog.String("audio_file_id", file.ID()),
		slog.String("user_id", in.UserID),
		slog.Int64("size", in.Size))
	return file, nil
}

func (s *audioServiceImpl) DeleteAudio(ctx context.Context, audioFileID, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	file, err := s.GetAudio(ctx, audioFileID, userID)
	if err != nil {
		return err
	}

	if err := s.storage.Remove(ctx, file.FilePath()); err != nil {
		log.Error("failed to remove audio object",
			slog.String("audio_file_id", audioFileID),
			slog.String("key", file.FilePath()),
			slog.String("error", err.Error()))
		return NewServiceError("audio", "DeleteAudio", "failed to remove stored audio", err)
	}

	if err := s.files.Delete(ctx, audioFileID); err != nil {
		return notFound(err, ErrAudioFileNotFound, "audio", "DeleteAudio")
	}

	log.Info("audio deleted",
		slog.String("audio_file_id", audioFileID),
		slog.String("user_id", userID))
	return nil
}

func (s *audioServiceImpl) GetAudio(ctx context.Context, audioFileID, userID string) (domain.AudioFile, error) {
	if userID == "" {
		return domain.AudioFile{}, ErrNotAuthenticated
	}
	if audioFileID == "" {
		return domain.AudioFile{}, domain.NewValidationError("id", "cannot be empty")
	}

	file, err := s.files.GetByID(ctx, audioFileID)
	if err != nil {
		return domain.AudioFile{}, notFound(err, ErrAudioFileNotFound, "audio", "GetAudio")
	}
	if !file.IsOwnedBy(userID) {
		logger.FromContextOrDefault(ctx, s.logger).Warn("audio access denied",
			slog.String("audio_file_id", audioFileID),
			slog.String("user_id", userID))
		return domain.AudioFile{}, ErrNotOwned
	}
	return file, nil
}

func (s *audioServiceImpl) ListUserAudio(ctx context.Context, userID string) ([]domain.AudioFile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	files, err := s.files.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("audio", "ListUserAudio", "failed to list", err)
	}
	return files, nil
}

func (s *audioServiceImpl) ListAudioForText(
	ctx context.Context,
	userID, readingTextID string,
) ([]domain.AudioFile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if _, err := domain.NewReadingTextID(readingTextID); err != nil {
		return nil, err
	}
	all, err := s.files.ListByReadingTextID(ctx, readingTextID)
	if err != nil {
		return nil, NewServiceError("audio", "ListAudioForText", "failed to list", err)
	}
	owned := make([]domain.AudioFile, 0, len(all))
	for _, f := range all {
		if f.IsOwnedBy(userID) {
			owned = append(owned, f)
		}
	}
	return owned, nil
}

// audioMediaType returns the media type of contentType without parameters,
// or ErrUnsupportedMediaType when it is not audio.
func audioMediaType(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, domain.AudioMIMEPrefix) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}
	return mediaType, nil
}

// objectKey builds <userID>/<readingTextID>/<unix-millis>-<base name>.
func objectKey(userID, readingTextID string, at time.Time, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "recording"
	}
	return fmt.Sprintf("%s/%s/%d-%s", userID, readingTextID, at.UnixMilli(), base)
}
