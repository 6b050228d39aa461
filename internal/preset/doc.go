// Package preset embeds the standard tooling shared by all plugin
// repositories: the development dependencies to install, the lint-staged,
// git-hook, and script blocks written into the root manifest, the external
// commands run during a migration, and the required configuration files
// copied into the repository root.
package preset
