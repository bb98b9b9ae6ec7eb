package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

var userColumns = []string{"id", "username", "display_name", "avatar_url", "created_at", "updated_at"}

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	return s.getBy(ctx, sq.Eq{"id": id})
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.getBy(ctx, sq.Eq{"username": username})
}

func (s *PostgresUserStore) getBy(ctx context.Context, where sq.Eq) (domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return domain.User{}, err
	}

	var p domain.UserParams
	err = s.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Username, &p.DisplayName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, store.ErrUserNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to get user",
			slog.String("error", err.Error()))
		return domain.User{}, MapError(err, nil)
	}
	return domain.NewUser(p)
}

// Save implements store.UserStore.Save as an upsert on id.
// Returns store.ErrUsernameExists if another profile holds the username.
func (s *PostgresUserStore) Save(ctx context.Context, user domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(
			user.ID(),
			user.Username(),
			user.DisplayName(),
			user.AvatarURL(),
			user.CreatedAt(),
			user.UpdatedAt(),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if uniqueConstraint(err) == "users_username_key" {
			log.WarnContext(ctx, "username already taken",
				slog.String("user_id", user.ID()),
				slog.String("username", user.Username()))
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}
		log.ErrorContext(ctx, "failed to save user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID()))
		return store.NewStoreError("user", "save", "upsert failed", MapError(err, nil))
	}

	log.InfoContext(ctx, "user profile saved", slog.String("user_id", user.ID()))
	return nil
}

// Delete implements store.UserStore.Delete.
func (s *PostgresUserStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return store.NewStoreError("user", "delete", "delete failed", MapError(err, nil))
	}
	return checkRowsAffected(tag, store.ErrUserNotFound)
}
