// Package aliasfile manages the shell-sourceable alias definition file.
//
// The file is line-oriented: each alias occupies one line of the form
// alias <name>='<command>'. Existing lines are never rewritten or
// reordered; create only appends and remove only deletes.
package aliasfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Alias is one parsed alias definition.
type Alias struct {
	Name    string
	Command string
}

// Store manages a single alias definition file.
type Store struct {
	path string
}

// New creates a store over the alias file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the path of the alias file.
func (s *Store) Path() string {
	return s.path
}

// Line builds the canonical one-line representation of an alias.
func Line(name, command string) string {
	return fmt.Sprintf("alias %s='%s'", name, command)
}

// Create appends the alias line unless the exact line is already present.
// A second create with the same pair is a no-op, which makes repeated
// threshold crossings idempotent.
func (s *Store) Create(name, command string) error {
	line := Line(name, command)
	data, err := os.ReadFile(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read alias file: %w", err)
	}
	for _, existing := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(existing) == line {
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create alias directory: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open alias file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append alias: %w", err)
	}
	return nil
}

// List parses every well-formed alias line in document order. Malformed
// lines are skipped. A missing file yields an empty list.
func (s *Store) List() ([]Alias, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}
	var aliases []Alias
	for _, line := range strings.Split(string(data), "\n") {
		if alias, ok := parseLine(line); ok {
			aliases = append(aliases, alias)
		}
	}
	return aliases, nil
}

// Remove rewrites the file without any line whose alias name matches
// exactly. It returns whether at least one line was removed. When nothing
// matches the file is left untouched.
func (s *Store) Remove(name string) (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read alias file: %w", err)
	}
	prefix := "alias " + name + "="
	lines := strings.SplitAfter(string(data), "\n")
	kept := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return false, nil
	}
	if err := os.WriteFile(s.path, []byte(strings.Join(kept, "")), 0o644); err != nil {
		return false, fmt.Errorf("failed to rewrite alias file: %w", err)
	}
	return true, nil
}

func parseLine(line string) (Alias, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "alias ") {
		return Alias{}, false
	}
	parts := strings.SplitN(strings.TrimPrefix(trimmed, "alias "), "=", 2)
	if len(parts) != 2 {
		return Alias{}, false
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Alias{}, false
	}
	command := strings.Trim(strings.TrimSpace(parts[1]), "'\"")
	return Alias{Name: name, Command: command}, true
}
