// Package environment defines the application environment labels and
// context helpers used by logger presets and configuration.
package environment
