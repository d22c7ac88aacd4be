package journal

import (
	"context"
	"path/filepath"
	"testing"
)

func TestAppendAndRecent(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	defer func() {
		if cerr := j.Close(); cerr != nil {
			t.Fatalf("failed to close journal: %v", cerr)
		}
	}()

	ctx := context.Background()
	pairs := [][2]string{{"gt", "git"}, {"gt", "git"}, {"dc", "docker"}}
	for i, pair := range pairs {
		if err := j.Append(ctx, pair[0], pair[1], i+1); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	events, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Wrong != "dc" || events[0].Correct != "docker" {
		t.Fatalf("unexpected newest event: %+v", events[0])
	}
	if events[1].Wrong != "gt" || events[1].CountAfter != 2 {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
	if events[0].RecordedAt.IsZero() {
		t.Fatalf("expected recorded_at to be set")
	}
}

func TestRecentZeroLimit(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	defer func() {
		_ = j.Close()
	}()

	events, err := j.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if events != nil {
		t.Fatalf("expected nil events, got %+v", events)
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	j, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open journal in nested dir: %v", err)
	}
	if cerr := j.Close(); cerr != nil {
		t.Fatalf("failed to close journal: %v", cerr)
	}
}
