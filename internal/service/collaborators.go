package service

import (
	"context"
	"io"

	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
)

// AuthProvider manages accounts and sessions.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string) (*auth.Identity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*auth.Identity, error)
	SignOut(ctx context.Context) error

	// CurrentIdentity returns nil, nil when ctx carries no signed-in session.
	CurrentIdentity(ctx context.Context) (*auth.Identity, error)
}

// ObjectStorage stores uploaded audio bytes.
type ObjectStorage interface {
	// Upload stores r under key and returns the stored key.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	PublicURL(key string) string
	Remove(ctx context.Context, keys ...string) error
}
