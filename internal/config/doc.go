// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Missing optional fields are filled in by applyDefaults; Validate reports the
// first invalid field by its YAML path, e.g. "cache.postgres.host is required".
package config
