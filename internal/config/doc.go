// Package config resolves the search query, target file and runtime settings
// from positional arguments, environment variables, an optional YAML file and
// CLI flags, with precedence: CLI flags > YAML config > Environment variables >
// Defaults. The resulting Config is a plain value and is never mutated.
package config
