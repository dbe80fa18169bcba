// Package sqlite implements the store interfaces on SQLite through gorm.
// It backs local development (the default sqlite:// database URL) and the
// service and API tests, which need real unique and foreign-key constraints
// without an external server. The schema is owned by the embedded goose
// migrations; gorm is used for queries only.
package sqlite
