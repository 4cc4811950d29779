// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration structure
// covering the execution environment and the logging settings (level, format,
// identifier, timestamp visibility) and translates them into logger options.
package config
