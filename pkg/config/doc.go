// Package config provides configuration management for scrollview.
//
// It wraps the pager's configuration to provide a single API for loading,
// validating, and writing configuration files in YAML format.
package config
