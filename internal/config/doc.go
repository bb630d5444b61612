// Package config loads promptdeck configuration from environment variables,
// command-line flags, and an optional JSON file, merging the three sources
// with mergo (first non-zero value wins, in that order) and validating the
// result before the application starts.
package config
