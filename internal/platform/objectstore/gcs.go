package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS stores objects in a Google Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket string
	logger *slog.Logger
}

// NewGCS connects to bucket. An empty credentialsFile uses application
// default credentials.
func NewGCS(ctx context.Context, bucket, credentialsFile string, logger *slog.Logger) (*GCS, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	return newGCS(ctx, bucket, logger, opts...)
}

func newGCS(ctx context.Context, bucket string, logger *slog.Logger, opts ...option.ClientOption) (*GCS, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket cannot be empty")
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GCS{
		client: client,
		bucket: bucket,
		logger: logger.With(slog.String("component", "gcs_storage"), slog.String("bucket", bucket)),
	}, nil
}

// Upload implements Backend.Upload. A failed read aborts the write without
// creating the object.
func (g *GCS) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	// Closing the writer commits whatever was written; cancelling its
	// context is the only way to discard a partial upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := g.client.Bucket(g.bucket).Object(key).NewWriter(writeCtx)
	w.ContentType = contentType

	n, err := io.Copy(w, r)
	if err != nil {
		cancel()
		_ = w.Close()
		g.logger.WarnContext(ctx, "object upload aborted",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", key, err)
	}

	g.logger.DebugContext(ctx, "object stored", slog.String("key", key), slog.Int64("bytes", n))
	return key, nil
}

// PublicURL implements Backend.PublicURL.
func (g *GCS) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, key)
}

// Remove implements Backend.Remove.
func (g *GCS) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		err := g.client.Bucket(g.bucket).Object(key).Delete(ctx)
		if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

// Close implements Backend.Close.
func (g *GCS) Close() error {
	return g.client.Close()
}
