//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
)

func TestCaseRepository_Sqlite(t *testing.T) {
	testCaseRepository(t, config.SqliteDbType)
}

func TestServiceTypeRepository_Sqlite(t *testing.T) {
	testServiceTypeRepository(t, config.SqliteDbType)
}

func TestUserAndSessionRepositories_Sqlite(t *testing.T) {
	testUserAndSessionRepositories(t, config.SqliteDbType)
}

func TestSupportingRepositories_Sqlite(t *testing.T) {
	testSupportingRepositories(t, config.SqliteDbType)
}
