// Package config loads, parses, and validates application settings from
// defaults, an optional config.yaml, and WORKSHOP_-prefixed environment
// variables.
package config
