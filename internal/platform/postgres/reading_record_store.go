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

var readingRecordColumns = []string{
	"id", "reading_text_id", "audio_url", "duration", "score", "created_at", "updated_at",
}

// PostgresReadingRecordStore implements store.ReadingRecordStore.
type PostgresReadingRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReadingRecordStore creates a reading record store on db.
func NewPostgresReadingRecordStore(db store.DBTX, logger *slog.Logger) *PostgresReadingRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresReadingRecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "reading_record_store")),
	}
}

var _ store.ReadingRecordStore = (*PostgresReadingRecordStore)(nil)

// GetByID implements store.ReadingRecordStore.GetByID.
func (s *PostgresReadingRecordStore) GetByID(ctx context.Context, id string) (domain.ReadingRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(readingRecordColumns...).
		From("reading_records").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ReadingRecord{}, err
	}

	rec, err := scanReadingRecord(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ReadingRecord{}, store.ErrReadingRecordNotFound
		}
		log.ErrorContext(ctx, "failed to get reading record",
			slog.String("error", err.Error()),
			slog.String("reading_record_id", id))
		return domain.ReadingRecord{}, MapError(err, nil)
	}
	return rec, nil
}

// List implements store.ReadingRecordStore.List.
func (s *PostgresReadingRecordStore) List(ctx context.Context) ([]domain.ReadingRecord, error) {
	return s.list(ctx, psql.Select(readingRecordColumns...).From("reading_records"))
}

// ListByReadingTextID implements store.ReadingRecordStore.ListByReadingTextID.
func (s *PostgresReadingRecordStore) ListByReadingTextID(
	ctx context.Context,
	readingTextID string,
) ([]domain.ReadingRecord, error) {
	return s.list(ctx, psql.Select(readingRecordColumns...).
		From("reading_records").
		Where(sq.Eq{"reading_text_id": readingTextID}))
}

func (s *PostgresReadingRecordStore) list(ctx context.Context, q sq.SelectBuilder) ([]domain.ReadingRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := q.OrderBy("created_at DESC", "id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		log.ErrorContext(ctx, "failed to list reading records", slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer rows.Close()

	records := make([]domain.ReadingRecord, 0)
	for rows.Next() {
		rec, err := scanReadingRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Save implements store.ReadingRecordStore.Save as an upsert on id.
// Returns store.ErrInvalidEntity if the reading text does not exist.
func (s *PostgresReadingRecordStore) Save(ctx context.Context, rec domain.ReadingRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Insert("reading_records").
		Columns(readingRecordColumns...).
		Values(
			rec.ID(),
			rec.ReadingTextID(),
			rec.AudioURL(),
			rec.Duration(),
			rec.Score(),
			rec.CreatedAt(),
			rec.UpdatedAt(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			audio_url = EXCLUDED.audio_url,
			duration = EXCLUDED.duration,
			score = EXCLUDED.score,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		log.ErrorContext(ctx, "failed to save reading record",
			slog.String("error", err.Error()),
			slog.String("reading_record_id", rec.ID()),
			slog.String("reading_text_id", rec.ReadingTextID()))
		return store.NewStoreError("reading_record", "save", "upsert failed", MapError(err, nil))
	}
	return nil
}

// Delete implements store.ReadingRecordStore.Delete.
func (s *PostgresReadingRecordStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("reading_records").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to delete reading record",
			slog.String("error", err.Error()),
			slog.String("reading_record_id", id))
		return store.NewStoreError("reading_record", "delete", "delete failed", MapError(err, nil))
	}
	return checkRowsAffected(tag, store.ErrReadingRecordNotFound)
}

func scanReadingRecord(row rowScanner) (domain.ReadingRecord, error) {
	var p domain.ReadingRecordParams
	if err := row.Scan(
		&p.ID, &p.ReadingTextID, &p.AudioURL, &p.Duration, &p.Score, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.ReadingRecord{}, err
	}
	return domain.NewReadingRecord(p)
}
