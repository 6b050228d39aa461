// Package cli defines the Cobra command tree for the plugin-migrate CLI. Each
// file in this package registers one top-level command (migrate, merge,
// doctor, etc.) with the root command. Command implementations delegate to
// internal packages for the migration itself and only handle flag parsing,
// path resolution, and output.
package cli
