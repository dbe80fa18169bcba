// Package testdb provides helpers for integration tests against a real
// PostgreSQL database. Tests that use it are skipped unless a database URL
// is supplied through WORKSHOP_TEST_DB_URL or a postgres DATABASE_URL.
package testdb
