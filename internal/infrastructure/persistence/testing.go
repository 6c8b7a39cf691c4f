//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/servicetypes"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB    *gorm.DB
	Repos *store.Repositories
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	repos, err := NewGormRepositories(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create repositories")

	return &TestContext{DB: db, Repos: repos}
}

// CreateTestUser builds a user with the given role
func CreateTestUser(t *testing.T, role users.Role) *users.User {
	t.Helper()

	id := uuid.NewString()
	return &users.User{
		ID:        id,
		Email:     "user-" + id[:8] + "@lvj.com",
		Name:      "Test " + string(role),
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// CreateTestServiceType builds a service type with a unique title unless one is given
func CreateTestServiceType(t *testing.T, title string) *servicetypes.ServiceType {
	t.Helper()

	if title == "" {
		title = "Service " + uuid.NewString()[:8]
	}
	return &servicetypes.ServiceType{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// CreateTestCase builds a new case managed by managerID
func CreateTestCase(t *testing.T, managerID string) *cases.Case {
	t.Helper()

	now := time.Now()
	return &cases.Case{
		ID:                   uuid.NewString(),
		CaseNumber:           "LVJ-" + uuid.NewString()[:13],
		Title:                "Work Visa Application - Jane Doe",
		ApplicantName:        "Jane Doe",
		ApplicantEmail:       "jane.doe@example.com",
		CaseManagerID:        &managerID,
		OverallStatus:        cases.StatusNew,
		Stage:                cases.DefaultStage,
		UrgencyLevel:         cases.DefaultUrgency,
		CompletionPercentage: cases.DefaultCompletionPercentage,
		Currency:             cases.DefaultCurrency,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
