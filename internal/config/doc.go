// Package config loads, normalizes, and validates indentlog settings.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// INDENTLOG_LEVEL and NO_COLOR. Render settings are checked here, including
// the annotation template, so a bad format fails at startup instead of on the
// first log line.
package config
