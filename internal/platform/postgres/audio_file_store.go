package postgres

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

var audioFileColumns = []string{
	"id", "user_id", "reading_text_id", "file_path", "public_url",
	"duration", "file_size", "mime_type", "created_at", "updated_at",
}

// PostgresAudioFileStore implements store.AudioFileStore.
type PostgresAudioFileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAudioFileStore creates an audio file store on db.
func NewPostgresAudioFileStore(db store.DBTX, logger *slog.Logger) *PostgresAudioFileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAudioFileStore{
		db:     db,
		logger: logger.With(slog.String("component", "audio_file_store")),
	}
}

var _ store.AudioFileStore = (*PostgresAudioFileStore)(nil)

// GetByID implements store.AudioFileStore.GetByID.
func (s *PostgresAudioFileStore) GetByID(ctx context.Context, id string) (domain.AudioFile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(audioFileColumns...).
		From("audio_files").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.AudioFile{}, err
	}

	f, err := scanAudioFile(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.DebugContext(ctx, "audio file not found", slog.String("audio_file_id", id))
			return domain.AudioFile{}, store.ErrAudioFileNotFound
		}
		log.ErrorContext(ctx, "failed to get audio file",
			slog.String("error", err.Error()),
			slog.String("audio_file_id", id))
		return domain.AudioFile{}, MapError(err, nil)
	}
	return f, nil
}

// ListByUserID implements store.AudioFileStore.ListByUserID.
func (s *PostgresAudioFileStore) ListByUserID(ctx context.Context, userID string) ([]domain.AudioFile, error) {
	return s.list(ctx, sq.Eq{"user_id": userID})
}

// ListByReadingTextID implements store.AudioFileStore.ListByReadingTextID.
func (s *PostgresAudioFileStore) ListByReadingTextID(
	ctx context.Context,
	readingTextID string,
) ([]domain.AudioFile, error) {
	return s.list(ctx, sq.Eq{"reading_text_id": readingTextID})
}

func (s *PostgresAudioFileStore) list(ctx context.Context, where sq.Eq) ([]domain.AudioFile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(audioFileColumns...).
		From("audio_files").
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		log.ErrorContext(ctx, "failed to list audio files", slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer rows.Close()

	files := make([]domain.AudioFile, 0)
	for rows.Next() {
		f, err := scanAudioFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Save implements store.AudioFileStore.Save as an upsert on id.
// Returns store.ErrInvalidEntity if the owner or reading text does not exist.
func (s *PostgresAudioFileStore) Save(ctx context.Context, f domain.AudioFile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Insert("audio_files").
		Columns(audioFileColumns...).
		Values(
			f.ID(),
			f.UserID(),
			f.ReadingTextID(),
			f.FilePath(),
			f.PublicURL(),
			f.Duration(),
			f.FileSize(),
			f.MimeType(),
			f.CreatedAt(),
			f.UpdatedAt(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			file_path = EXCLUDED.file_path,
			public_url = EXCLUDED.public_url,
			duration = EXCLUDED.duration,
			file_size = EXCLUDED.file_size,
			mime_type = EXCLUDED.mime_type,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		log.ErrorContext(ctx, "failed to save audio file",
			slog.String("error", err.Error()),
			slog.String("audio_file_id", f.ID()),
			slog.String("user_id", f.UserID()))
		return store.NewStoreError("audio_file", "save", "upsert failed", MapError(err, nil))
	}

	log.InfoContext(ctx, "audio file saved",
		slog.String("audio_file_id", f.ID()),
		slog.String("user_id", f.UserID()),
		slog.Int64("file_size", f.FileSize()))
	return nil
}

// Delete implements store.AudioFileStore.Delete. Evaluations of the file
// are removed by the foreign key cascade.
func (s *PostgresAudioFileStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("audio_files").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to delete audio file",
			slog.String("error", err.Error()),
			slog.String("audio_file_id", id))
		return store.NewStoreError("audio_file", "delete", "delete failed", MapError(err, nil))
	}
	return checkRowsAffected(tag, store.ErrAudioFileNotFound)
}

func scanAudioFile(row rowScanner) (domain.AudioFile, error) {
	var p domain.AudioFileParams
	if err := row.Scan(
		&p.ID, &p.UserID, &p.ReadingTextID, &p.FilePath, &p.PublicURL,
		&p.Duration, &p.FileSize, &p.MimeType, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.AudioFile{}, err
	}
	return domain.NewAudioFile(p)
}
