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

var audioEvaluationColumns = []string{
	"id", "audio_file_id", "user_id", "score", "feedback", "created_at", "updated_at",
}

// PostgresAudioEvaluationStore implements store.AudioEvaluationStore.
type PostgresAudioEvaluationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAudioEvaluationStore creates an evaluation store on db.
func NewPostgresAudioEvaluationStore(db store.DBTX, logger *slog.Logger) *PostgresAudioEvaluationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAudioEvaluationStore{
		db:     db,
		logger: logger.With(slog.String("component", "audio_evaluation_store")),
	}
}

var _ store.AudioEvaluationStore = (*PostgresAudioEvaluationStore)(nil)

// GetByID implements store.AudioEvaluationStore.GetByID.
func (s *PostgresAudioEvaluationStore) GetByID(ctx context.Context, id string) (domain.AudioEvaluation, error) {
	query, args, err := psql.Select(audioEvaluationColumns...).
		From("audio_evaluations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.AudioEvaluation{}, err
	}

	e, err := scanAudioEvaluation(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AudioEvaluation{}, store.ErrAudioEvaluationNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to get audio evaluation",
			slog.String("error", err.Error()),
			slog.String("evaluation_id", id))
		return domain.AudioEvaluation{}, MapError(err, nil)
	}
	return e, nil
}

// ListByAudioFileID implements store.AudioEvaluationStore.ListByAudioFileID.
func (s *PostgresAudioEvaluationStore) ListByAudioFileID(
	ctx context.Context,
	audioFileID string,
) ([]domain.AudioEvaluation, error) {
	return s.list(ctx, sq.Eq{"audio_file_id": audioFileID})
}

// ListByUserID implements store.AudioEvaluationStore.ListByUserID.
func (s *PostgresAudioEvaluationStore) ListByUserID(ctx context.Context, userID string) ([]domain.AudioEvaluation, error) {
	return s.list(ctx, sq.Eq{"user_id": userID})
}

func (s *PostgresAudioEvaluationStore) list(ctx context.Context, where sq.Eq) ([]domain.AudioEvaluation, error) {
	query, args, err := psql.Select(audioEvaluationColumns...).
		From("audio_evaluations").
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to list audio evaluations",
			slog.String("error", err.Error()))
		return nil, MapError(err, nil)
	}
	defer rows.Close()

	evaluations := make([]domain.AudioEvaluation, 0)
	for rows.Next() {
		e, err := scanAudioEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}

// Save implements store.AudioEvaluationStore.Save as an upsert on id.
func (s *PostgresAudioEvaluationStore) Save(ctx context.Context, e domain.AudioEvaluation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Insert("audio_evaluations").
		Columns(audioEvaluationColumns...).
		Values(
			e.ID(),
			e.AudioFileID(),
			e.UserID(),
			e.Score(),
			e.Feedback(),
			e.CreatedAt(),
			e.UpdatedAt(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			score = EXCLUDED.score,
			feedback = EXCLUDED.feedback,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		log.ErrorContext(ctx, "failed to save audio evaluation",
			slog.String("error", err.Error()),
			slog.String("evaluation_id", e.ID()),
			slog.String("audio_file_id", e.AudioFileID()))
		return store.NewStoreError("audio_evaluation", "save", "upsert failed", MapError(err, nil))
	}
	return nil
}

// Delete implements store.AudioEvaluationStore.Delete.
func (s *PostgresAudioEvaluationStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("audio_evaluations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return store.NewStoreError("audio_evaluation", "delete", "delete failed", MapError(err, nil))
	}
	return checkRowsAffected(tag, store.ErrAudioEvaluationNotFound)
}

func scanAudioEvaluation(row rowScanner) (domain.AudioEvaluation, error) {
	var p domain.AudioEvaluationParams
	if err := row.Scan(
		&p.ID, &p.AudioFileID, &p.UserID, &p.Score, &p.Feedback, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.AudioEvaluation{}, err
	}
	return domain.NewAudioEvaluation(p)
}
