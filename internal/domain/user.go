package domain

import "time"

// User is the public profile of an account. Credentials are owned by the
// authentication provider, not by this type.
type User struct {
	id          string
	username    string
	displayName *string
	avatarURL   *string
	createdAt   time.Time
	updatedAt   time.Time
}

// UserParams carries the raw fields for NewUser. DisplayName and AvatarURL
// are optional.
type UserParams struct {
	ID          string
	Username    string
	DisplayName *string
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileUpdate lists the profile fields to change. Nil fields keep their
// current value.
type ProfileUpdate struct {
	DisplayName *string
	AvatarURL   *string
}

// NewUser validates p and returns a User.
func NewUser(p UserParams) (User, error) {
	if p.ID == "" {
		return User{}, NewValidationError("id", "cannot be empty")
	}
	if p.Username == "" {
		return User{}, NewValidationError("username", "cannot be empty")
	}

	createdAt, updatedAt := stampTimes(p.CreatedAt, p.UpdatedAt)
	return User{
		id:          p.ID,
		username:    p.Username,
		displayName: copyString(p.DisplayName),
		avatarURL:   copyString(p.AvatarURL),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u User) ID() string           { return u.id }
func (u User) Username() string     { return u.username }
func (u User) CreatedAt() time.Time { return u.createdAt }
func (u User) UpdatedAt() time.Time { return u.updatedAt }

// DisplayName returns the display name, or nil when unset.
func (u User) DisplayName() *string { return copyString(u.displayName) }

// AvatarURL returns the avatar URL, or nil when unset.
func (u User) AvatarURL() *string { return copyString(u.avatarURL) }

// UpdateProfile returns a copy of u with the non-nil fields of upd merged in
// and a later UpdatedAt.
func (u User) UpdateProfile(upd ProfileUpdate) User {
	next := u
	if upd.DisplayName != nil {
		next.displayName = copyString(upd.DisplayName)
	}
	if upd.AvatarURL != nil {
		next.avatarURL = copyString(upd.AvatarURL)
	}
	next.updatedAt = nextUpdatedAt(u.updatedAt)
	return next
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
