// Package config manages user-level settings stored at
// ~/.plugin-migrate/config.yaml. Values resolve in the order command-line
// flag, PLUGIN_MIGRATE_* environment variable, config file, built-in default.
package config
