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

var readingTextColumns = []string{"id", "content", "difficulty", "category", "created_at", "updated_at"}

// PostgresReadingTextStore implements store.ReadingTextStore.
type PostgresReadingTextStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReadingTextStore creates a reading text store on db.
// If logger is nil, a default logger will be used.
func NewPostgresReadingTextStore(db store.DBTX, logger *slog.Logger) *PostgresReadingTextStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresReadingTextStore{
		db:     db,
		logger: logger.With(slog.String("component", "reading_text_store")),
	}
}

var _ store.ReadingTextStore = (*PostgresReadingTextStore)(nil)

// GetByID implements store.ReadingTextStore.GetByID.
func (s *PostgresReadingTextStore) GetByID(ctx context.Context, id string) (domain.ReadingText, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(readingTextColumns...).
		From("reading_texts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ReadingText{}, err
	}

	text, err := scanReadingText(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.DebugContext(ctx, "reading text not found", slog.String("reading_text_id", id))
			return domain.ReadingText{}, store.ErrReadingTextNotFound
		}
		log.ErrorContext(ctx, "failed to get reading text",
			slog.String("error", err.Error()),
			slog.String("reading_text_id", id))
		return domain.ReadingText{}, MapError(err, nil)
	}
	return text, nil
}

// List implements store.ReadingTextStore.List.
func (s *PostgresReadingTextStore) List(ctx context.Context, filter store.ReadingTextFilter) ([]domain.ReadingText, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q := psql.Select(readingTextColumns...).
		From("reading_texts").
		OrderBy("created_at DESC", "id")
	if filter.Difficulty != "" {
		q = q.Where(sq.Eq{"difficulty": string(filter.Difficulty)})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": string(filter.Category)})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		log.ErrorContext(ctx, "failed to list reading texts", slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer rows.Close()

	texts := make([]domain.ReadingText, 0)
	for rows.Next() {
		text, err := scanReadingText(rows)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, rows.Err()
}

// Save implements store.ReadingTextStore.Save as an upsert on id.
func (s *PostgresReadingTextStore) Save(ctx context.Context, text domain.ReadingText) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Insert("reading_texts").
		Columns(readingTextColumns...).
		Values(
			text.ID(),
			text.Content(),
			text.Difficulty().String(),
			text.Category().String(),
			text.CreatedAt(),
			text.UpdatedAt(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			difficulty = EXCLUDED.difficulty,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		log.ErrorContext(ctx, "failed to save reading text",
			slog.String("error", err.Error()),
			slog.String("reading_text_id", text.ID()))
		return store.NewStoreError("reading_text", "save", "upsert failed", MapError(err, nil))
	}

	log.DebugContext(ctx, "reading text saved", slog.String("reading_text_id", text.ID()))
	return nil
}

// Delete implements store.ReadingTextStore.Delete.
func (s *PostgresReadingTextStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Delete("reading_texts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		log.ErrorContext(ctx, "failed to delete reading text",
			slog.String("error", err.Error()),
			slog.String("reading_text_id", id))
		return store.NewStoreError("reading_text", "delete", "delete failed",
			MapDeleteError(err, store.ErrReadingTextInUse))
	}
	return checkRowsAffected(tag, store.ErrReadingTextNotFound)
}

func scanReadingText(row rowScanner) (domain.ReadingText, error) {
	var p domain.ReadingTextParams
	if err := row.Scan(&p.ID, &p.Content, &p.Difficulty, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.ReadingText{}, err
	}
	return domain.NewReadingText(p)
}
