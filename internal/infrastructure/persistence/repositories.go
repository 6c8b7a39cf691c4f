package persistence

import (
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/domain/cases"
	"github.com/Khaledaun/LVJAPP/internal/domain/store"
	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormRepositories wires every GORM repository against db.
func NewGormRepositories(db *gorm.DB, log logger.Logger) (*store.Repositories, error) {
	caseRepo, err := NewGormCaseRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create case repository: %w", err)
	}
	statusChangeRepo, err := NewGormStatusChangeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create status change repository: %w", err)
	}
	serviceTypeRepo, err := NewGormServiceTypeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create service type repository: %w", err)
	}
	userRepo, err := NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	sessionRepo, err := NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	partnerRoleRepo, err := NewGormPartnerRoleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create partner role repository: %w", err)
	}
	paymentRepo, err := NewGormPaymentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment repository: %w", err)
	}
	documentRepo, err := NewGormDocumentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}

	return &store.Repositories{
		Cases:         caseRepo,
		StatusChanges: statusChangeRepo,
		ServiceTypes:  serviceTypeRepo,
		Users:         userRepo,
		Sessions:      sessionRepo,
		PartnerRoles:  partnerRoleRepo,
		Payments:      paymentRepo,
		Documents:     documentRepo,
		Mode:          cases.ModeDatabase,
	}, nil
}

// InMemory is a migrated sqlite ":memory:" store. Close releases the database.
type InMemory struct {
	DB    *gorm.DB
	Repos *store.Repositories
}

// Close closes the in-memory database, discarding its contents.
func (m *InMemory) Close() error {
	return CloseDB(m.DB)
}

// NewInMemoryRepositories opens an empty sqlite ":memory:" database, migrates it
// and returns the GORM repositories on top of it, tagged with mode.
func NewInMemoryRepositories(log logger.Logger, mode string) (*InMemory, error) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}

	repos, err := NewGormRepositories(db, log)
	if err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	repos.Mode = mode

	return &InMemory{DB: db, Repos: repos}, nil
}
