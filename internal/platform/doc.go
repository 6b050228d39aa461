// Package platform provides the filesystem operations a migration performs on
// a plugin repository: removing stale install artifacts and copying template
// trees over the repository. Permission changes are skipped on Windows.
package platform
