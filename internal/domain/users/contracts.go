package users

import (
	"context"
	"time"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository defines persistence operations for sessions
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// AuthService resolves session tokens to actors and manages sessions.
type AuthService interface {
	// Authenticate returns the actor owning token.
	// It fails with an unauthenticated error for unknown or expired sessions.
	Authenticate(ctx context.Context, token string) (*Actor, error)

	// IssueSession creates a new session for the user with the given email.
	IssueSession(ctx context.Context, email string, ttl time.Duration) (*Session, error)

	// RevokeSession deletes the session identified by token.
	RevokeSession(ctx context.Context, token string) error
}
