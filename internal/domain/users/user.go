package users

import (
	"strings"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Public messages shared by every storage backend.
const (
	UserNotFoundMessage    = "User not found"
	EmailConflictMessage   = "A user with this email already exists."
	SessionNotFoundMessage = "Session not found"
)

// User entity
type User struct {
	ID        string    `validate:"required"`
	Email     string    `validate:"required,email"`
	Name      string    `validate:"omitempty,max=255"`
	Role      Role      `validate:"required,role"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

func roleValidators() map[string]validator.Func {
	names := make([]string, 0, len(AllRoles()))
	for _, r := range AllRoles() {
		names = append(names, string(r))
	}
	return map[string]validator.Func{"role": validators.FoldedEnum(names...)}
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u, roleValidators())
}

// Actor is the authenticated principal a request runs as.
type Actor struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// ActorFromUser builds the principal for a stored user.
func ActorFromUser(u *User) *Actor {
	return &Actor{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.Normalize()}
}

// Label identifies the actor in audit records: name, then email, then id.
func (a *Actor) Label() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	if a.Email != "" {
		return a.Email
	}
	return a.ID
}

// Development actors used when SKIP_AUTH=1 and no session is present.
var (
	DevCaseActor  = Actor{ID: "dev-user", Email: "dev@lvj.local", Name: "Dev User", Role: RoleStaff}
	DevAdminActor = Actor{ID: "dev-bypass", Email: "dev-bypass@lvj.local", Name: "Dev Bypass", Role: RoleAdmin}
)

// Session binds an opaque token to a user until ExpiresAt.
type Session struct {
	Token     string    `validate:"required,min=32"`
	UserID    string    `validate:"required"`
	ExpiresAt time.Time `validate:"required"`
	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	return validators.Struct(s, nil)
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
