// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. Environment
// variables use the READALOUD_ prefix, with nested keys joined by
// underscores (for example READALOUD_AUTH_JWT_SECRET).
package config
