// Package models contains the GORM database models of the case management store.
// Each model maps to one table and converts to and from its domain entity,
// keeping ORM tags out of the domain packages.
package models
