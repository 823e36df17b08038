// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, overridden from the environment where secrets
// should not live on disk, and validated before any component is constructed.
package config
