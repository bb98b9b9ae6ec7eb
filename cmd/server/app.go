package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kami8ma8810/next-architecture-learning/internal/api"
	"github.com/kami8ma8810/next-architecture-learning/internal/config"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/objectstore"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/postgres"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
)

// application holds the shared dependencies and closes them on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	storage objectstore.Backend

	authProvider *auth.Provider

	authService       service.AuthService
	textService       service.ReadingTextService
	recordService     service.ReadingRecordService
	audioService      service.AudioService
	evaluationService service.EvaluationService
}

// loadConfig reads configuration and installs the structured logger.
func loadConfig(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, logger.Setup(cfg.Log), nil
}

// newApplication connects to the database and object storage and builds
// every service.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: log}

	var err error
	app.pool, err = postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	app.storage, err = objectstore.New(ctx, cfg.Storage, log)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	log.Info("object storage initialized", slog.String("backend", cfg.Storage.Backend))

	if err := app.buildServices(); err != nil {
		app.close()
		return nil, err
	}

	log.Info("application initialized")
	return app, nil
}

func (app *application) buildServices() error {
	var (
		cfg = app.config
		log = app.logger
		err error
	)

	texts := postgres.NewPostgresReadingTextStore(app.pool, log)
	records := postgres.NewPostgresReadingRecordStore(app.pool, log)
	files := postgres.NewPostgresAudioFileStore(app.pool, log)
	evaluations := postgres.NewPostgresAudioEvaluationStore(app.pool, log)
	users := postgres.NewPostgresUserStore(app.pool, log)
	credentials := postgres.NewPostgresCredentialStore(app.pool, log)
	sessions := postgres.NewPostgresSessionStore(app.pool, log)

	tokens, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	log.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.authProvider, err = auth.NewProvider(app.pool, credentials, sessions, tokens,
		auth.NewBcryptHasher(cfg.Auth.BCryptCost), log)
	if err != nil {
		return fmt.Errorf("failed to create auth provider: %w", err)
	}

	if app.authService, err = service.NewAuthService(app.authProvider, users, log); err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	if app.textService, err = service.NewReadingTextService(texts, log); err != nil {
		return fmt.Errorf("failed to create reading text service: %w", err)
	}
	if app.recordService, err = service.NewReadingRecordService(records, texts, log); err != nil {
		return fmt.Errorf("failed to create reading record service: %w", err)
	}
	if app.audioService, err = service.NewAudioService(files, texts, app.storage, log); err != nil {
		return fmt.Errorf("failed to create audio service: %w", err)
	}
	if app.evaluationService, err = service.NewEvaluationService(files, evaluations, log); err != nil {
		return fmt.Errorf("failed to create evaluation service: %w", err)
	}
	return nil
}

// routerDeps builds the handlers mounted by api.NewRouter.
func (app *application) routerDeps() (*api.RouterDeps, error) {
	authHandler, err := api.NewAuthHandler(app.authService, app.logger)
	if err != nil {
		return nil, err
	}
	textHandler, err := api.NewTextHandler(app.textService, app.recordService, app.logger)
	if err != nil {
		return nil, err
	}
	audioHandler, err := api.NewAudioHandler(app.audioService, app.evaluationService,
		app.config.Upload.MaxBytes, app.logger)
	if err != nil {
		return nil, err
	}

	deps := &api.RouterDeps{
		Auth:          authHandler,
		Texts:         textHandler,
		Audio:         audioHandler,
		Authenticator: app.authProvider,
		Logger:        app.logger,
	}
	if local, ok := app.storage.(*objectstore.Local); ok {
		deps.FilesDir = local.Root()
	}
	return deps, nil
}

// close releases the storage client and the connection pool.
func (app *application) close() {
	if app.storage != nil {
		if err := app.storage.Close(); err != nil {
			app.logger.Error("error closing object storage", slog.String("error", err.Error()))
		}
	}
	if app.pool != nil {
		app.pool.Close()
	}
	app.logger.Info("application shutdown completed")
}
