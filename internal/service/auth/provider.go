package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// Provider authenticates accounts with email and password. Credentials and
// sessions are kept in the credential and session stores; access tokens are
// JWTs whose id is the session id, so deleting the session revokes them.
type Provider struct {
	db          store.TxBeginner
	credentials store.CredentialStore
	sessions    store.SessionStore
	tokens      JWTService
	hasher      PasswordHasher
	logger      *slog.Logger
	timeFunc    func() time.Time
}

// NewProvider creates a Provider. It returns an error if any of the required
// dependencies are nil.
func NewProvider(
	db store.TxBeginner,
	credentials store.CredentialStore,
	sessions store.SessionStore,
	tokens JWTService,
	hasher PasswordHasher,
	log *slog.Logger,
) (*Provider, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil")
	}
	if credentials == nil {
		return nil, domain.NewValidationError("credentials", "cannot be nil")
	}
	if sessions == nil {
		return nil, domain.NewValidationError("sessions", "cannot be nil")
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil")
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provider{
		db:          db,
		credentials: credentials,
		sessions:    sessions,
		tokens:      tokens,
		hasher:      hasher,
		logger:      log.With(slog.String("component", "auth_provider")),
		timeFunc:    time.Now,
	}, nil
}

// SignUp registers a new account and signs it in. The credential and the
// first session are written in one transaction.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	userID := uuid.NewString()
	sessionID := uuid.NewString()
	token, expiresAt, err := p.tokens.GenerateToken(ctx, userID, email, sessionID)
	if err != nil {
		return nil, err
	}

	now := p.timeFunc().UTC()
	err = store.RunInTransaction(ctx, p.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := p.credentials.WithTx(tx).Create(ctx, store.Credential{
			UserID:       userID,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		return p.sessions.WithTx(tx).Create(ctx, store.Session{
			ID:        sessionID,
			UserID:    userID,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		})
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			log.Error("failed to register account", slog.String("error", err.Error()))
		}
		return nil, err
	}

	log.Info("account registered", slog.String("user_id", userID))
	return &Identity{
		UserID:      userID,
		Email:       email,
		SessionID:   sessionID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// SignInWithPassword verifies the credentials and opens a new session.
func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, p.logger)

	email = strings.ToLower(strings.TrimSpace(email))
	cred, err := p.credentials.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := p.hasher.Compare(cred.PasswordHash, password); err != nil {
		log.Debug("password mismatch", slog.String("user_id", cred.UserID))
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, expiresAt, err := p.tokens.GenerateToken(ctx, cred.UserID, cred.Email, sessionID)
	if err != nil {
		return nil, err
	}
	if err := p.sessions.Create(ctx, store.Session{
		ID:        sessionID,
		UserID:    cred.UserID,
		CreatedAt: p.timeFunc().UTC(),
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	log.Debug("session opened", slog.String("user_id", cred.UserID))
	return &Identity{
		UserID:      cred.UserID,
		Email:       cred.Email,
		SessionID:   sessionID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// SignOut deletes the session of the token in ctx.
func (p *Provider) SignOut(ctx context.Context) error {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return ErrMissingToken
	}
	if err := p.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	logger.FromContextOrDefault(ctx, p.logger).Debug("session closed",
		slog.String("user_id", claims.UserID))
	return nil
}

// CurrentIdentity returns the identity of the token in ctx, or nil when the
// request is anonymous or its session no longer exists.
func (p *Provider) CurrentIdentity(ctx context.Context) (*Identity, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, nil
	}
	session, err := p.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return &Identity{
		UserID:      session.UserID,
		Email:       claims.Email,
		SessionID:   session.ID,
		AccessToken: tokenFromContext(ctx),
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

// Authenticate validates token and checks that its session is still open.
func (p *Provider) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := p.tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}
	session, err := p.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrSessionRevoked
		}
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.NewValidationError("email", "cannot be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.NewValidationError("email", "must be a valid email address")
	}
	return email, nil
}
