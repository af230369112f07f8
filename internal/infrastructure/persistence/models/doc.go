// Package models contains GORM-specific persistence models that map to
// database tables, kept separate from domain types so the domain layer
// stays free of ORM concerns.
package models
