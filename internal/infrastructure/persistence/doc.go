// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for PostgreSQL and SQLite. Repositories join the
// transaction carried by the context when one is active, so application services
// can group writes across aggregates.
package persistence
