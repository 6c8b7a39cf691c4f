// Package persistence provides the GORM backed repositories of the case store.
// It supports PostgreSQL for deployments and SQLite for development and tests,
// and translates driver errors so unique violations surface as conflicts.
package persistence
