package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kami8ma8810/next-architecture-learning/internal/config"
)

// ErrInvalidKey is returned for empty keys or keys escaping the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// Backend stores objects under slash-separated keys.
type Backend interface {
	// Upload writes r under key and returns the stored key.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// PublicURL returns the URL clients use to fetch key.
	PublicURL(key string) string

	// Remove deletes keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error

	Close() error
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Backend, error) {
	switch cfg.Backend {
	case "local":
		return NewLocal(cfg.LocalDir, cfg.PublicBaseURL, logger)
	case "gcs":
		return NewGCS(ctx, cfg.Bucket, cfg.CredentialsFile, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
