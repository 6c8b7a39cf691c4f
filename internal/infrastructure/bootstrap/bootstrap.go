// Package bootstrap assembles the storage backend and the notification transport
// selected by the configuration. It is shared by the API server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/notifications"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/domain/users"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/notifier"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/persistence"
	"github.com/Khaledaun/LVJAPP/internal/infrastructure/seed"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"
)

// Storage is an opened set of repositories and the function releasing them.
type Storage struct {
	Repos *store.Repositories
	Close func() error
}

// OpenStorage returns a sqlite ":memory:" store seeded with the dev fixture when SKIP_DB
// is on, otherwise the configured migrated database.
func OpenStorage(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*Storage, error) {
	if cfg.Features.SkipDBEnabled() {
		return openMemory(ctx, log)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := persistence.NewGormRepositories(db, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	return &Storage{
		Repos: repos,
		Close: func() error { return persistence.CloseDB(db) },
	}, nil
}

func openMemory(ctx context.Context, log logger.Logger) (*Storage, error) {
	mem, err := persistence.NewInMemoryRepositories(log, cases.ModeMock)
	if err != nil {
		return nil, err
	}

	fx, err := seed.Load(seed.FixtureDev)
	if err != nil {
		_ = mem.Close()
		return nil, fmt.Errorf("failed to load dev fixture: %w", err)
	}

	summary, err := seed.Apply(ctx, mem.Repos, fx, log)
	if err != nil {
		_ = mem.Close()
		return nil, fmt.Errorf("failed to seed in-memory store: %w", err)
	}
	log.Info("SKIP_DB enabled, serving mock data: ", summary.String())

	return &Storage{Repos: mem.Repos, Close: mem.Close}, nil
}

// OpenNotifier logs notices instead of sending them when SKIP_DB is on.
func OpenNotifier(cfg *config.RestConfig, log logger.Logger) (notifications.Notifier, error) {
	if cfg.Features.SkipDBEnabled() {
		return notifier.NewLogNotifier(log), nil
	}
	return notifier.NewNotifier(&cfg.Notifications, log)
}

// IssueDevSessions mints a session for every user of the dev fixture when SKIP_DB
// is on and logs the tokens. The in-memory store is private to the server process.
func IssueDevSessions(ctx context.Context, cfg *config.RestConfig, auth users.AuthService, log logger.Logger) ([]*users.Session, error) {
	if !cfg.Features.SkipDBEnabled() {
		return nil, nil
	}

	fx, err := seed.Load(seed.FixtureDev)
	if err != nil {
		return nil, fmt.Errorf("failed to load dev fixture: %w", err)
	}

	sessions := make([]*users.Session, 0, len(fx.Users))
	for _, u := range fx.Users {
		session, err := auth.IssueSession(ctx, u.Email, cfg.Auth.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to issue dev session for %s: %w", u.Email, err)
		}
		log.Info("SKIP_DB dev session email=", u.Email, " role=", u.Role, " token=", session.Token)
		sessions = append(sessions, session)
	}
	return sessions, nil
}
