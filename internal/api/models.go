package api

import (
	"time"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/service"
)

// SignUpRequest defines the payload for POST /auth/signup.
type SignUpRequest struct {
	Email       string  `json:"email"        validate:"required,email"`
	Password    string  `json:"password"     validate:"required,max=72"`
	Username    string  `json:"username"     validate:"required,min=1,max=50"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url"   validate:"omitempty,url"`
}

// SignInRequest defines the payload for POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the payload for PATCH /auth/me. Omitted fields
// keep their current value.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url"   validate:"omitempty,url"`
}

// UserResponse is the public view of a user profile.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SessionResponse carries the bearer token for a signed-in session.
type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	User    UserResponse     `json:"user"`
	Session *SessionResponse `json:"session,omitempty"`
}

// CreateTextRequest defines the payload for POST /texts.
type CreateTextRequest struct {
	Content    string `json:"content"    validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Category   string `json:"category"   validate:"required,oneof=STORY NEWS POEM ESSAY DIALOGUE"`
}

// UpdateTextRequest defines the payload for PUT /texts/{id}.
type UpdateTextRequest struct {
	Content string `json:"content" validate:"required"`
}

// TextResponse is the public view of a reading text.
type TextResponse struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Difficulty string    `json:"difficulty"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateRecordRequest defines the payload for POST /texts/{id}/records.
type CreateRecordRequest struct {
	AudioURL string  `json:"audio_url" validate:"required"`
	Duration float64 `json:"duration"`
	Score    int     `json:"score"`
}

// UpdateRecordScoreRequest defines the payload for PATCH /records/{id}.
type UpdateRecordScoreRequest struct {
	Score *int `json:"score" validate:"required"`
}

// RecordResponse is the public view of a reading record.
type RecordResponse struct {
	ID            string    `json:"id"`
	ReadingTextID string    `json:"reading_text_id"`
	AudioURL      string    `json:"audio_url"`
	Duration      float64   `json:"duration"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AudioFileResponse is the public view of an uploaded recording. The storage
// key is not exposed.
type AudioFileResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ReadingTextID string    `json:"reading_text_id"`
	PublicURL     string    `json:"public_url"`
	Duration      float64   `json:"duration"`
	FileSize      int64     `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EvaluateAudioRequest defines the payload for POST /audio/{id}/evaluations.
type EvaluateAudioRequest struct {
	Score    *int   `json:"score"    validate:"required"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

// EvaluationResponse is the public view of an audio evaluation.
type EvaluationResponse struct {
	ID          string    `json:"id"`
	AudioFileID string    `json:"audio_file_id"`
	UserID      string    `json:"user_id"`
	Score       int       `json:"score"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		Username:    u.Username(),
		DisplayName: u.DisplayName(),
		AvatarURL:   u.AvatarURL(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func authResultToResponse(res service.AuthResult) AuthResponse {
	resp := AuthResponse{User: userToResponse(res.User)}
	if res.Session != nil {
		resp.Session = &SessionResponse{
			AccessToken: res.Session.AccessToken,
			TokenType:   "Bearer",
			ExpiresAt:   res.Session.ExpiresAt,
		}
	}
	return resp
}

func textToResponse(t domain.ReadingText) TextResponse {
	return TextResponse{
		ID:         t.ID(),
		Content:    t.Content(),
		Difficulty: t.Difficulty().String(),
		Category:   t.Category().String(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func recordToResponse(r domain.ReadingRecord) RecordResponse {
	return RecordResponse{
		ID:            r.ID(),
		ReadingTextID: r.ReadingTextID(),
		AudioURL:      r.AudioURL(),
		Duration:      r.Duration(),
		Score:         r.Score(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func audioFileToResponse(f domain.AudioFile) AudioFileResponse {
	return AudioFileResponse{
		ID:            f.ID(),
		UserID:        f.UserID(),
		ReadingTextID: f.ReadingTextID(),
		PublicURL:     f.PublicURL(),
		Duration:      f.Duration(),
		FileSize:      f.FileSize(),
		MimeType:      f.MimeType(),
		CreatedAt:     f.CreatedAt(),
		UpdatedAt:     f.UpdatedAt(),
	}
}

func evaluationToResponse(e domain.AudioEvaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:          e.ID(),
		AudioFileID: e.AudioFileID(),
		UserID:      e.UserID(),
		Score:       e.Score(),
		Feedback:    e.Feedback(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

// mapSlice converts each element of in with fn. It never returns nil so
// empty lists encode as [].
func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
