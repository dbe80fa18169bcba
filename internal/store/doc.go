// Package store defines interfaces for data persistence operations.
// Implementations live under internal/platform; services depend only on
// these interfaces and the sentinel errors declared here.
package store
