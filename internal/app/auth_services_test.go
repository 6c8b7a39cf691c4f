//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)
	ts.CreateUser(t, "staff-1", users.RoleStaff)

	session, err := ts.Auth.IssueSession(ctx, "staff-1@lvj.com", time.Hour)
	require.NoError(t, err)
	assert.Len(t, session.Token, 64)
	assert.Equal(t, "staff-1", session.UserID)

	actor, err := ts.Auth.Authenticate(ctx, "  "+session.Token+" ")
	require.NoError(t, err)
	assert.Equal(t, "staff-1", actor.ID)
	assert.Equal(t, users.RoleStaff, actor.Role)

	other, err := ts.Auth.IssueSession(ctx, "staff-1@lvj.com", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, session.Token, other.Token)

	require.NoError(t, ts.Auth.RevokeSession(ctx, session.Token))
	_, err = ts.Auth.Authenticate(ctx, session.Token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))

	_, err = ts.Auth.Authenticate(ctx, other.Token)
	assert.NoError(t, err)
}

func TestAuthService_Expired(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)
	ts.CreateUser(t, "client-1", users.RoleClient)

	session, err := ts.Auth.IssueSession(ctx, "client-1@lvj.com", time.Minute)
	require.NoError(t, err)

	ts.Auth.(*authService).now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = ts.Auth.Authenticate(ctx, session.Token)
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.HTTPStatus(err))

	_, err = ts.Repos.Sessions.GetByToken(ctx, session.Token)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "expired session should be deleted")
}

func TestAuthService_Errors(t *testing.T) {
	ctx := context.Background()
	ts := SetupTestServices(t, nil, nil)

	_, err := ts.Auth.Authenticate(ctx, "")
	assert.Equal(t, apperrors.ErrUnauthenticated, err)

	_, err = ts.Auth.Authenticate(ctx, "unknown-token")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))

	_, err = ts.Auth.IssueSession(ctx, "nobody@lvj.com", time.Hour)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))

	ts.CreateUser(t, "admin-1", users.RoleAdmin)
	_, err = ts.Auth.IssueSession(ctx, "admin-1@lvj.com", 0)
	assert.Equal(t, 400, apperrors.HTTPStatus(err))
}
