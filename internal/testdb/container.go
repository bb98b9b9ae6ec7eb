//go:build integration

package testdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kami8ma8810/next-architecture-learning/internal/ciutil"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:17-alpine"
	user     = "testuser"
	password = "testpass"
	dbName   = "readaloud_test"
)

// Database is a reachable test database. Terminate releases the container,
// if one was started.
type Database struct {
	URL       string
	container testcontainers.Container
}

// Start returns the configured test database or starts a container.
func Start(ctx context.Context, logger *slog.Logger) (*Database, error) {
	if url := ciutil.TestDatabaseURL(logger); url != "" {
		logger.Info("using configured test database", slog.String("url", ciutil.MaskSensitiveValue(url)))
		return &Database{URL: url}, nil
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port.Port(), dbName)
	logger.Info("started postgres container", slog.String("image", image), slog.Bool("ci", ciutil.IsCI()))
	return &Database{URL: url, container: container}, nil
}

// Terminate stops the container started by Start. It is a no-op for a
// configured database.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.container == nil {
		return nil
	}
	return d.container.Terminate(ctx)
}
