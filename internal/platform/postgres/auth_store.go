package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// PostgresCredentialStore implements store.CredentialStore on the
// auth_credentials table.
type PostgresCredentialStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCredentialStore creates a credential store on db.
func NewPostgresCredentialStore(db store.DBTX, logger *slog.Logger) *PostgresCredentialStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCredentialStore{
		db:     db,
		logger: logger.With(slog.String("component", "credential_store")),
	}
}

var _ store.CredentialStore = (*PostgresCredentialStore)(nil)

// Create implements store.CredentialStore.Create. Emails are stored
// lower-cased.
func (s *PostgresCredentialStore) Create(ctx context.Context, cred store.Credential) error {
	query, args, err := psql.Insert("auth_credentials").
		Columns("user_id", "email", "password_hash", "created_at").
		Values(cred.UserID, strings.ToLower(cred.Email), cred.PasswordHash, cred.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to create credential",
			slog.String("error", err.Error()),
			slog.String("user_id", cred.UserID))
		return store.NewStoreError("credential", "create", "insert failed", MapError(err, nil))
	}
	return nil
}

// GetByEmail implements store.CredentialStore.GetByEmail.
func (s *PostgresCredentialStore) GetByEmail(ctx context.Context, email string) (store.Credential, error) {
	query, args, err := psql.Select("user_id", "email", "password_hash", "created_at").
		From("auth_credentials").
		Where(sq.Eq{"email": strings.ToLower(email)}).
		ToSql()
	if err != nil {
		return store.Credential{}, err
	}

	var c store.Credential
	err = s.db.QueryRow(ctx, query, args...).Scan(&c.UserID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Credential{}, store.ErrCredentialNotFound
		}
		return store.Credential{}, MapError(err, nil)
	}
	return c, nil
}

// WithTx implements store.CredentialStore.WithTx.
func (s *PostgresCredentialStore) WithTx(tx store.DBTX) store.CredentialStore {
	return &PostgresCredentialStore{db: tx, logger: s.logger}
}

// PostgresSessionStore implements store.SessionStore on the auth_sessions
// table.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a session store on db.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

var _ store.SessionStore = (*PostgresSessionStore)(nil)

// Create implements store.SessionStore.Create.
func (s *PostgresSessionStore) Create(ctx context.Context, session store.Session) error {
	query, args, err := psql.Insert("auth_sessions").
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).ErrorContext(ctx, "failed to create session",
			slog.String("error", err.Error()),
			slog.String("user_id", session.UserID))
		return store.NewStoreError("session", "create", "insert failed", MapError(err, nil))
	}
	return nil
}

// Get implements store.SessionStore.Get.
func (s *PostgresSessionStore) Get(ctx context.Context, id string) (store.Session, error) {
	query, args, err := psql.Select("id", "user_id", "created_at", "expires_at").
		From("auth_sessions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return store.Session{}, err
	}

	var sess store.Session
	err = s.db.QueryRow(ctx, query, args...).Scan(&sess.ID, &sess.UserID, &sess.CreatedAt, &sess.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Session{}, store.ErrSessionNotFound
		}
		return store.Session{}, MapError(err, nil)
	}
	return sess, nil
}

// Delete implements store.SessionStore.Delete.
func (s *PostgresSessionStore) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("auth_sessions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return store.NewStoreError("session", "delete", "delete failed", MapError(err, nil))
	}
	return nil
}

// WithTx implements store.SessionStore.WithTx.
func (s *PostgresSessionStore) WithTx(tx store.DBTX) store.SessionStore {
	return &PostgresSessionStore{db: tx, logger: s.logger}
}
