package storage

import (
	"context"
	"time"
)

// Session is the single authoritative copy of the device's authenticated
// session. It is created on sign-in/sign-up, mutated in place on every
// refresh (both tokens rotate) and destroyed on sign-out or an
// irrecoverable refresh failure.
type Session struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // epoch seconds
}

// ExpiresWithin reports whether the access token expires within d of now.
func (s *Session) ExpiresWithin(d time.Duration) bool {
	return time.Now().Add(d).Unix() >= s.ExpiresAt
}

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines the durable store for the device session.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (sign-out)
	DeleteSession(ctx context.Context) error
}
