// Package config loads and validates the YAML configuration file and
// supports hot-reload via fsnotify.
//
// The config lists the pages to audit (each backed by a measurement
// source), the report output destination, and logging options. Missing
// optional fields are filled with defaults; invalid files are rejected
// at load time with a field-specific error.
package config
