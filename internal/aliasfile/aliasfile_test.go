package aliasfile

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "aliases.sh"))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read alias file: %v", err)
	}
	return string(data)
}

func TestCreateAppendsCanonicalLine(t *testing.T) {
	s := newTestStore(t)
	if err := s.Create("gt", "git"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got, want := readFile(t, s.Path()), "alias gt='git'\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCreateDuplicateLineIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.Create("gt", "git"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	before := readFile(t, s.Path())
	if err := s.Create("gt", "git"); err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if got := readFile(t, s.Path()); got != before {
		t.Fatalf("expected file unchanged, got %q", got)
	}
}

func TestCreateSameNameDifferentCommandAppendsBoth(t *testing.T) {
	s := newTestStore(t)
	if err := s.Create("gt", "git"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := s.Create("gt", "cat"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	want := "alias gt='git'\nalias gt='cat'\n"
	if got := readFile(t, s.Path()); got != want {
		t.Fatalf("expected both lines, got %q", got)
	}
}

func TestListPreservesOrderAndSkipsMalformed(t *testing.T) {
	s := newTestStore(t)
	content := "# created by autoalias\n" +
		"alias gt='git'\n" +
		"not an alias line\n" +
		"alias dc='docker compose'\n" +
		"alias broken\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	aliases, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(aliases) != 2 {
		t.Fatalf("expected 2 aliases, got %d: %+v", len(aliases), aliases)
	}
	if aliases[0].Name != "gt" || aliases[0].Command != "git" {
		t.Fatalf("unexpected first alias: %+v", aliases[0])
	}
	if aliases[1].Name != "dc" || aliases[1].Command != "docker compose" {
		t.Fatalf("unexpected second alias: %+v", aliases[1])
	}
}

func TestListMissingFile(t *testing.T) {
	s := newTestStore(t)
	aliases, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(aliases) != 0 {
		t.Fatalf("expected no aliases, got %+v", aliases)
	}
}

func TestRemoveMissingLeavesFileUntouched(t *testing.T) {
	s := newTestStore(t)
	content := "alias gt='git'\n# trailing comment\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	removed, err := s.Remove("nope")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed {
		t.Fatalf("expected nothing removed")
	}
	if got := readFile(t, s.Path()); got != content {
		t.Fatalf("expected file byte-for-byte unchanged, got %q", got)
	}
}

func TestRemoveDeletesOnlyMatchingLines(t *testing.T) {
	s := newTestStore(t)
	content := "alias gt='git'\nalias gts='git status'\nalias gt='cat'\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	removed, err := s.Remove("gt")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected removal")
	}
	// gts only shares a prefix; it must survive.
	if got, want := readFile(t, s.Path()), "alias gts='git status'\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRemoveLastLineLeavesEmptyFile(t *testing.T) {
	s := newTestStore(t)
	if err := s.Create("gt", "git"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	removed, err := s.Remove("gt")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected removal")
	}
	if got := readFile(t, s.Path()); got != "" {
		t.Fatalf("expected empty file, got %q", got)
	}
}

func TestRemoveMissingFile(t *testing.T) {
	s := newTestStore(t)
	removed, err := s.Remove("gt")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed {
		t.Fatalf("expected nothing removed for missing file")
	}
}
