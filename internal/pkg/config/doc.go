// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper and may be overridden by
// environment variables, including the development mode switches (SKIP_DB,
// SKIP_AUTH) and the feature flags shared with the web frontend.
package config
