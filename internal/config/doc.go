// Package config defines the run configuration of orgmeta: where the record
// files and schemas live and how to log. Values come from ORGMETA_*
// environment variables with built-in defaults; the CLI layers its flags on
// top. Nothing in the loader or graph packages reads the environment or
// fixed paths directly, so they stay testable against arbitrary fixtures.
package config
