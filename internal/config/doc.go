// Package config loads, normalizes, and validates desksort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and resolves the environment-provided
// directories: the user's desktop (the directory that gets sorted) and the
// per-user configuration root that holds the mapping database and lock file.
// When the platform cannot supply either, Load fails with
// ErrEnvironmentPathNotFound.
//
// Always obtain settings through this package so downstream code receives
// absolute paths and clear validation errors.
package config
