package models

import (
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/users"
)

// UserModel is the GORM database model for portal users
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Email     string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name      string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"not null;index;type:varchar(32)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      users.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.Role = string(u.Role.Normalize())
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// SessionModel is the GORM database model for login sessions
type SessionModel struct {
	Token     string    `gorm:"primaryKey;type:varchar(128)"`
	UserID    string    `gorm:"not null;index;type:varchar(64)"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *users.Session {
	return &users.Session{
		Token:     m.Token,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *users.Session) {
	m.Token = s.Token
	m.UserID = s.UserID
	m.ExpiresAt = s.ExpiresAt
	m.CreatedAt = s.CreatedAt
}
