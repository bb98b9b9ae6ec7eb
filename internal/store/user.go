package store

import (
	"context"
	"time"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
)

// UserStore defines persistence for user profiles.
type UserStore interface {
	// GetByID returns ErrUserNotFound if no profile has the id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByUsername returns ErrUserNotFound if no profile has the username.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Save inserts or replaces the profile. Returns ErrUsernameExists when a
	// different profile already holds the username.
	Save(ctx context.Context, user domain.User) error

	Delete(ctx context.Context, id string) error
}

// Credential is the email/password pair of an account. The user id is shared
// with the account's profile.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a signed-in session. Access tokens reference it by id so that
// signing out revokes them.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// CredentialStore defines persistence for account credentials.
type CredentialStore interface {
	// Create returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, cred Credential) error

	// GetByEmail returns ErrCredentialNotFound if no account uses the email.
	GetByEmail(ctx context.Context, email string) (Credential, error)

	// WithTx returns a CredentialStore bound to tx.
	WithTx(tx DBTX) CredentialStore
}

// SessionStore defines persistence for sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) error

	// Get returns ErrSessionNotFound if the session does not exist.
	Get(ctx context.Context, id string) (Session, error)

	// Delete is idempotent.
	Delete(ctx context.Context, id string) error

	// WithTx returns a SessionStore bound to tx.
	WithTx(tx DBTX) SessionStore
}
