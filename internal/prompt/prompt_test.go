package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/autoalias/internal/engine"
)

func TestConfirmMissingTerminalIsUnavailable(t *testing.T) {
	p := &TTY{path: filepath.Join(t.TempDir(), "no-such-tty")}
	if got := p.Confirm("Create alias? "); got != engine.DecisionUnavailable {
		t.Fatalf("expected unavailable, got %v", got)
	}
}

func TestConfirmNonTerminalFileIsUnavailable(t *testing.T) {
	// A regular file opens fine but is not a terminal.
	path := filepath.Join(t.TempDir(), "fake-tty")
	if err := os.WriteFile(path, []byte("y\n"), 0o644); err != nil {
		t.Fatalf("failed to write fake tty: %v", err)
	}
	p := &TTY{path: path}
	if got := p.Confirm("Create alias? "); got != engine.DecisionUnavailable {
		t.Fatalf("expected unavailable for non-terminal, got %v", got)
	}
}
