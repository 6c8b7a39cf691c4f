//go:build unit || integration
// +build unit integration

package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// RecordingNotifier keeps sent messages in memory and can be told to fail.
type RecordingNotifier struct {
	mu       sync.Mutex
	messages []notifications.Message
	fail     bool
}

func (n *RecordingNotifier) Send(_ context.Context, msg notifications.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("messages endpoint unavailable")
	}
	n.messages = append(n.messages, msg)
	return nil
}

// FailWith toggles failure of subsequent sends.
func (n *RecordingNotifier) FailWith(fail bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fail = fail
}

// Messages returns a copy of the sent messages.
func (n *RecordingNotifier) Messages() []notifications.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notifications.Message(nil), n.messages...)
}

// TestServices holds the application services and their collaborators for testing
type TestServices struct {
	*Services
	Repos    *store.Repositories
	Notifier *RecordingNotifier
	Logger   *testutil.RecordingLogger
}

// TestConfig returns a configuration with status notifications enabled.
func TestConfig() *config.RestConfig {
	return &config.RestConfig{
		Port:   "8080",
		AppURL: "http://localhost:3000",
		Notifications: config.NotificationSettings{
			Transport:        config.NotificationTransportLog,
			IntakeRecipients: []string{"legal@lvj.com", "admin@lvj.com"},
			StatusRecipients: []string{"admin@lvj.com"},
		},
		Auth: config.AuthSettings{SessionTTL: time.Hour, CookieName: "session_token"},
	}
}

// SetupTestServices wires the services to repos, or to a fresh sqlite ":memory:" store
// in mock mode when repos is nil
func SetupTestServices(t *testing.T, repos *store.Repositories, cfg *config.RestConfig) *TestServices {
	t.Helper()

	log := testutil.NewRecordingLogger()
	if repos == nil {
		mem, err := persistence.NewInMemoryRepositories(log, cases.ModeMock)
		require.NoError(t, err)
		t.Cleanup(func() { _ = mem.Close() })
		repos = mem.Repos
	}
	if cfg == nil {
		cfg = TestConfig()
	}

	notifier := &RecordingNotifier{}
	services, err := NewServices(repos, notifier, cfg, log)
	require.NoError(t, err)

	return &TestServices{Services: services, Repos: repos, Notifier: notifier, Logger: log}
}

// CreateUser stores a user with role and returns it as an actor
func (ts *TestServices) CreateUser(t *testing.T, id string, role users.Role) *users.Actor {
	t.Helper()

	u := &users.User{
		ID:        id,
		Email:     id + "@lvj.com",
		Name:      "User " + id,
		Role:      role,
		CreatedAt: time.Now(),
	}
	require.NoError(t, ts.Repos.Users.Create(context.Background(), u))
	return users.ActorFromUser(u)
}
