// Package logging configures the diagnostic logger.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/verte-zerg/autoalias/internal/config"
)

// New builds a logger that writes to the autoalias log file and stderr.
// Swallowed persistence errors are only visible through this logger, so
// the level defaults to warn; AUTOALIAS_LOG_LEVEL overrides it.
func New(dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create autoalias directory: %w", err)
	}

	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if v := os.Getenv("AUTOALIAS_LOG_LEVEL"); v != "" {
		if parsed, err := zap.ParseAtomicLevel(v); err == nil {
			level = parsed
		}
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{
		"stderr",
		config.LogPath(dir),
	}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
