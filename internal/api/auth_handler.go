package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/kami8ma8810/next-architecture-learning/internal/api/shared"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
)

// AuthHandler handles sign-up, sign-in, sign-out and profile requests.
type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, log *slog.Logger) (*AuthHandler, error) {
	if authService == nil {
		return nil, domain.NewValidationError("authService", "cannot be nil")
	}
	if log == nil {
		return nil, domain.NewValidationError("logger", "cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		logger:      log.With(slog.String("component", "auth_handler")),
	}, nil
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.authService.SignUp(r.Context(), service.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user signed up",
		slog.String("user_id", res.User.ID()))
	shared.RespondWithJSON(w, r, http.StatusCreated, authResultToResponse(res))
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.authService.SignIn(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to sign in")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("user signed in",
		slog.String("user_id", res.User.ID()))
	shared.RespondWithJSON(w, r, http.StatusOK, authResultToResponse(res))
}

// SignOut handles POST /auth/signout.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to sign out")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.CurrentUser(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load profile")
		return
	}
	if user == nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(*user))
}

// UpdateMe handles PATCH /auth/me.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
