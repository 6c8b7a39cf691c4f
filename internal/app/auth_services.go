package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

const sessionTokenBytes = 32

// authService implements the AuthService interface on top of the session store
type authService struct {
	repos  *store.Repositories
	logger logger.Logger
	now    func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(repos *store.Repositories, logger logger.Logger) (users.AuthService, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	return &authService{repos: repos, logger: logger, now: time.Now}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*users.Actor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	session, err := s.repos.Sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired(s.now()) {
		if err := s.repos.Sessions.DeleteByToken(ctx, token); err != nil {
			s.logger.Warn(fmt.Sprintf("Failed to delete expired session of user %s: %v", session.UserID, err))
		}
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.repos.Users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return users.ActorFromUser(user), nil
}

// IssueSession mints a random token for the user with email, valid for ttl.
func (s *authService) IssueSession(ctx context.Context, email string, ttl time.Duration) (*users.Session, error) {
	if ttl <= 0 {
		return nil, apperrors.Invalid("session ttl must be positive")
	}

	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &users.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.repos.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("Issued session for user ", user.ID, " expiring at ", session.ExpiresAt.Format(time.RFC3339))
	return session, nil
}

func (s *authService) RevokeSession(ctx context.Context, token string) error {
	return s.repos.Sessions.DeleteByToken(ctx, strings.TrimSpace(token))
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
