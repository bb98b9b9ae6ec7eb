package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service/auth"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// SignUpInput carries the account and profile fields of a new user.
// DisplayName defaults to Username.
type SignUpInput struct {
	Email       string
	Password    string
	Username    string
	DisplayName *string
	AvatarURL   *string
}

// AuthResult is a signed-in user and their session.
type AuthResult struct {
	User    domain.User
	Session *auth.Identity
}

// AuthService signs users up, in and out and manages their profiles.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (AuthResult, error)

	// SignIn fails with ErrUserNotFound when the credentials are valid but no
	// profile exists for the account.
	SignIn(ctx context.Context, email, password string) (AuthResult, error)

	SignOut(ctx context.Context) error

	// CurrentUser returns nil, nil when nobody is signed in or the signed-in
	// account has no profile.
	CurrentUser(ctx context.Context) (*domain.User, error)

	UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error)
}

type authServiceImpl struct {
	provider AuthProvider
	users    store.UserStore
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(provider AuthProvider, users store.UserStore, log *slog.Logger) (AuthService, error) {
	if provider == nil {
		return nil, domain.NewValidationError("provider", "cannot be nil")
	}
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &authServiceImpl{
		provider: provider,
		users:    users,
		logger:   log.With(slog.String("component", "auth_service")),
	}, nil
}

func (s *authServiceImpl) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return AuthResult{}, domain.NewValidationError("username", "cannot be empty")
	}
	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return AuthResult{}, store.ErrUsernameExists
	case !errors.Is(err, domain.ErrNotFound):
		return AuthResult{}, NewServiceError("auth", "SignUp", "failed to check username", err)
	}

	identity, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return AuthResult{}, err
	}
	if identity == nil {
		return AuthResult{}, ErrSignUpFailed
	}

	displayName := in.DisplayName
	if displayName == nil {
		displayName = &username
	}
	user, err := domain.NewUser(domain.UserParams{
		ID:          identity.UserID,
		Username:    username,
		DisplayName: displayName,
		AvatarURL:   in.AvatarURL,
	})
	if err != nil {
		return AuthResult{}, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		log.Error("account created but profile not saved",
			slog.String("user_id", identity.UserID),
			slog.String("error", err.Error()))
		return AuthResult{}, NewServiceError("auth", "SignUp", "failed to save profile", err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID()))
	return AuthResult{User: user, Session: identity}, nil
}

func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	identity, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return AuthResult{}, err
	}
	if identity == nil {
		return AuthResult{}, auth.ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Warn("signed-in account has no profile",
				slog.String("user_id", identity.UserID))
			return AuthResult{}, ErrUserNotFound
		}
		return AuthResult{}, NewServiceError("auth", "SignIn", "failed to load profile", err)
	}
	return AuthResult{User: user, Session: identity}, nil
}

func (s *authServiceImpl) SignOut(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}

func (s *authServiceImpl) CurrentUser(ctx context.Context) (*domain.User, error) {
	identity, err := s.provider.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, nil
	}
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, NewServiceError("auth", "CurrentUser", "failed to load profile", err)
	}
	return &user, nil
}

func (s *authServiceImpl) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.User, error) {
	identity, err := s.provider.CurrentIdentity(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if identity == nil {
		return domain.User{}, ErrNotAuthenticated
	}
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return domain.User{}, notFound(err, ErrUserNotFound, "auth", "UpdateProfile")
	}

	updated := user.UpdateProfile(upd)
	if err := s.users.Save(ctx, updated); err != nil {
		return domain.User{}, NewServiceError("auth", "UpdateProfile", "failed to save profile", err)
	}
	return updated, nil
}
