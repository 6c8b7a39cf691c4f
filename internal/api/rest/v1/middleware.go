package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/apperrors"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
	actorKey     = "actor"
)

// RequestID tags every request with a ksuid unless the caller supplied one.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = ksuid.New().String()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// Authenticator resolves the session of a request into an actor.
type Authenticator struct {
	auth       users.AuthService
	cookieName string
	skipAuth   bool
	logger     logger.Logger
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(auth users.AuthService, cookieName string, skipAuth bool, logger logger.Logger) *Authenticator {
	return &Authenticator{auth: auth, cookieName: cookieName, skipAuth: skipAuth, logger: logger}
}

// sessionToken reads a bearer token, then the session cookie.
func (a *Authenticator) sessionToken(ctx *gin.Context) string {
	if header := ctx.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := ctx.Cookie(a.cookieName); err == nil {
		return cookie
	}
	return ""
}

// Require aborts with 401 unless the request carries a valid session.
// When auth is skipped and no credentials are sent, the request runs as fallback.
func (a *Authenticator) Require(fallback users.Actor) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := a.sessionToken(ctx)
		if token == "" && a.skipAuth {
			dev := fallback
			ctx.Set(actorKey, &dev)
			ctx.Next()
			return
		}

		actor, err := a.auth.Authenticate(ctx, token)
		if err != nil {
			respondError(ctx, a.logger, err)
			ctx.Abort()
			return
		}
		ctx.Set(actorKey, actor)
		ctx.Next()
	}
}

// Optional attaches the actor when a valid session is present and never aborts.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := a.sessionToken(ctx); token != "" {
			if actor, err := a.auth.Authenticate(ctx, token); err == nil {
				ctx.Set(actorKey, actor)
			}
		}
		ctx.Next()
	}
}

// RequireRole aborts with 403 message unless the actor's role satisfies allowed.
// It runs after Require and before any body is read.
func RequireRole(allowed func(users.Role) bool, message string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		actor := actorFrom(ctx)
		if actor == nil {
			respondError(ctx, nil, apperrors.ErrUnauthenticated)
			ctx.Abort()
			return
		}
		if !allowed(actor.Role) {
			respondError(ctx, nil, apperrors.Forbidden(message))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// actorFrom returns the actor set by the auth middleware, or nil.
func actorFrom(ctx *gin.Context) *users.Actor {
	v, ok := ctx.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*users.Actor)
	return actor
}

// respondError writes {"error": msg} with the status of err's kind.
// Internal errors are logged and replaced by a generic message.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error(fmt.Sprintf("%s %s failed request_id=%s: %v", ctx.Request.Method, ctx.FullPath(), ctx.GetString(requestIDKey), err))
	}
	ctx.JSON(status, ErrorResponse{Error: apperrors.PublicMessage(err)})
}
