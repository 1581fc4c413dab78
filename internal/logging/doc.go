// Package logging constructs the slog loggers used by the configmaker CLI.
//
// Two output formats are supported: a compact console format for interactive
// use and a JSON format for scripted invocations. Output defaults to stderr
// so the generated configuration document can stream to stdout without
// interleaving. Attribute helpers mirror the slog constructors so callers can
// import a single package for structured fields.
package logging
