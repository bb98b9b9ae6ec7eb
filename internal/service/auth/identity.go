package auth

import "time"

// Identity is a signed-in account as seen by the rest of the application.
type Identity struct {
	UserID      string
	Email       string
	SessionID   string
	AccessToken string
	ExpiresAt   time.Time
}
