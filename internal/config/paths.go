// Package config defines the persisted document types and path helpers.
package config

import (
	"os"
	"path/filepath"
)

// DefaultDir returns the per-user autoalias directory. AUTOALIAS_DIR
// overrides the default of ~/.autoalias.
func DefaultDir() string {
	if v := os.Getenv("AUTOALIAS_DIR"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".autoalias")
}

// ConfigPath returns the path of the config document.
func ConfigPath(dir string) string {
	return filepath.Join(dir, "config.json")
}

// StatsPath returns the path of the stats document.
func StatsPath(dir string) string {
	return filepath.Join(dir, "stats.json")
}

// IgnorePath returns the path of the ignore-list document.
func IgnorePath(dir string) string {
	return filepath.Join(dir, "ignore.json")
}

// AliasesPath returns the path of the shell-sourceable alias file.
func AliasesPath(dir string) string {
	return filepath.Join(dir, "aliases.sh")
}

// JournalPath returns the path of the correction journal database.
func JournalPath(dir string) string {
	return filepath.Join(dir, "journal.db")
}

// LogPath returns the path of the diagnostic log file.
func LogPath(dir string) string {
	return filepath.Join(dir, "autoalias.log")
}

// HookPath returns the path the shell hook script is installed to.
func HookPath(dir string) string {
	return filepath.Join(dir, "hook.sh")
}
