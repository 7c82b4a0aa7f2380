// Package config defines the alarm settings and provides helpers to load
// and save them in YAML format.
//
// The settings file is optional: when it is absent, built-in defaults
// apply and the tool behaves exactly as if invoked with no file at all.
// Command-line arguments always override file values.
package config
