// Package store persists the autoalias JSON documents.
//
// Loads substitute the documented default when a document is missing or
// unreadable, and saves are best-effort: I/O failures are logged and
// swallowed so that a broken filesystem never fails the calling command.
// A crash in the middle of the rename window can still lose the latest
// write, which is accepted.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/verte-zerg/autoalias/internal/config"
)

// Store reads and writes the JSON documents under the autoalias directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// New creates a store rooted at dir.
func New(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// LoadConfig returns the config document, or the defaults if it is
// missing or unparseable.
func (s *Store) LoadConfig() config.Config {
	cfg := config.Default()
	s.loadJSON(config.ConfigPath(s.dir), &cfg)
	return cfg
}

// SaveConfig writes the config document.
func (s *Store) SaveConfig(cfg config.Config) {
	s.saveJSON(config.ConfigPath(s.dir), cfg)
}

// LoadStats returns the stats document, or an empty mapping if it is
// missing or unparseable.
func (s *Store) LoadStats() config.Stats {
	stats := config.Stats{}
	s.loadJSON(config.StatsPath(s.dir), &stats)
	if stats == nil {
		stats = config.Stats{}
	}
	return stats
}

// SaveStats writes the stats document.
func (s *Store) SaveStats(stats config.Stats) {
	s.saveJSON(config.StatsPath(s.dir), stats)
}

// LoadIgnore returns the ignore-list document, or an empty one if it is
// missing or unparseable.
func (s *Store) LoadIgnore() config.IgnoreList {
	ignore := config.IgnoreList{
		IgnoreAliases:  []string{},
		IgnoreCommands: []string{},
	}
	s.loadJSON(config.IgnorePath(s.dir), &ignore)
	return ignore
}

// SaveIgnore writes the ignore-list document.
func (s *Store) SaveIgnore(ignore config.IgnoreList) {
	s.saveJSON(config.IgnorePath(s.dir), ignore)
}

// loadJSON decodes path into out, leaving out untouched when the document
// is absent. Read and decode failures are logged, never returned.
func (s *Store) loadJSON(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read document, using defaults",
				zap.String("path", path), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("failed to decode document, using defaults",
			zap.String("path", path), zap.Error(err))
	}
}

// saveJSON writes the document via a temp file and rename so a partial
// write cannot clobber committed data. Failures are logged and swallowed.
func (s *Store) saveJSON(path string, doc any) {
	if err := s.writeJSON(path, doc); err != nil {
		s.logger.Error("failed to write document",
			zap.String("path", path), zap.Error(err))
	}
}

func (s *Store) writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
