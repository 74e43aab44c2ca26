// Package config is the single source of truth for application
// configuration and file paths.
//
// It holds three things:
//
// Config: process-level settings (logging), loaded from environment
// variables with the ALVEO_ prefix, optionally merged with a YAML file.
//
// Store: the small persisted record of parsing parameters (the marker
// line that delimits preamble from data rows, and the default worksheet
// name). The Store is owned by the orchestrating caller; the parser and
// exporter borrow it read-only per call and never mutate it.
//
// Paths: executable-relative path resolution. All paths are ALWAYS
// relative to the executable directory, never the current working
// directory, so the tool behaves the same wherever it is launched from.
package config
