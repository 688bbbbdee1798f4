// Package config loads, normalizes, and validates mkvdefault configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// MKVDEFAULT_* environment overrides. The Config type is passed explicitly to
// every component, so nothing downstream reads process-wide settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
