// Package persistence provides the GORM backed key pair repository and the
// database connection helpers for PostgreSQL and SQLite.
package persistence
