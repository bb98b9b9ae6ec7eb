package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores objects as files below a root directory.
type Local struct {
	root    string
	baseURL string
	logger  *slog.Logger
}

// NewLocal creates root if needed. baseURL is the prefix under which the
// files are served over HTTP.
func NewLocal(root, baseURL string, logger *slog.Logger) (*Local, error) {
	if root == "" {
		return nil, errors.New("local storage root cannot be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create dir %s: %w", root, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With(slog.String("component", "local_storage")),
	}, nil
}

// Root returns the directory objects are written to.
func (l *Local) Root() string { return l.root }

// Upload implements Backend.Upload. The file is written to a temporary name
// and renamed into place once complete.
func (l *Local) Upload(ctx context.Context, key, _ string, r io.Reader) (string, error) {
	dst, err := l.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create dir for %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := io.Copy(tmp, readerWithContext(ctx, r))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("move %s into place: %w", key, err)
	}

	l.logger.DebugContext(ctx, "object stored", slog.String("key", key), slog.Int64("bytes", n))
	return key, nil
}

// PublicURL implements Backend.PublicURL.
func (l *Local) PublicURL(key string) string {
	u, err := url.JoinPath(l.baseURL, strings.Split(key, "/")...)
	if err != nil {
		return l.baseURL + "/" + key
	}
	return u
}

// Remove implements Backend.Remove.
func (l *Local) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		p, err := l.resolve(key)
		if err != nil {
			return err
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
		l.logger.DebugContext(ctx, "object removed", slog.String("key", key))
	}
	return nil
}

// Close implements Backend.Close.
func (l *Local) Close() error { return nil }

// resolve maps key to a path below root, rejecting traversal.
func (l *Local) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}
