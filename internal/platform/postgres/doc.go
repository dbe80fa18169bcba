// Package postgres provides PostgreSQL implementations of the store
// interfaces using database/sql over the pgx stdlib driver. Schema changes
// are embedded goose migrations.
package postgres
