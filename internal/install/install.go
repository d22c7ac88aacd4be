// Package install writes the shell integration files.
package install

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/verte-zerg/autoalias/internal/config"
)

//go:embed hook.sh
var hookScript string

// Install writes the embedded shell hook into the autoalias directory and
// returns its path. The hook detects command-not-found misses, records
// the correction the user makes, and sources the alias file.
func Install(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create autoalias directory: %w", err)
	}
	path := config.HookPath(dir)
	if err := os.WriteFile(path, []byte(hookScript), 0o644); err != nil {
		return "", fmt.Errorf("failed to write hook script: %w", err)
	}
	return path, nil
}
