package config

import "testing"

func TestStatsIncrement(t *testing.T) {
	stats := Stats{}
	if got := stats.Increment("gt", "git"); got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}
	if got := stats.Increment("gt", "git"); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
	if got := stats.Increment("gt", "cat"); got != 1 {
		t.Fatalf("expected independent count 1, got %d", got)
	}
	if got := stats.Count("gt", "git"); got != 2 {
		t.Fatalf("expected stored count 2, got %d", got)
	}
	if got := stats.Count("missing", "git"); got != 0 {
		t.Fatalf("expected 0 for unseen pair, got %d", got)
	}
}

func TestIgnoreListAddAliasSetSemantics(t *testing.T) {
	var ignore IgnoreList
	if !ignore.AddAlias("gt") {
		t.Fatalf("expected first add to succeed")
	}
	if ignore.AddAlias("gt") {
		t.Fatalf("expected duplicate add to be rejected")
	}
	if len(ignore.IgnoreAliases) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(ignore.IgnoreAliases))
	}
	if !ignore.HasAlias("gt") {
		t.Fatalf("expected gt to be ignored")
	}
}

func TestIgnoreListRemoveBothSets(t *testing.T) {
	ignore := IgnoreList{
		IgnoreAliases:  []string{"gt", "ks"},
		IgnoreCommands: []string{"gt"},
	}
	if !ignore.Remove("gt") {
		t.Fatalf("expected removal to succeed")
	}
	if ignore.HasAlias("gt") || ignore.HasCommand("gt") {
		t.Fatalf("expected gt removed from both sets: %+v", ignore)
	}
	if !ignore.HasAlias("ks") {
		t.Fatalf("expected unrelated entry to survive")
	}
	if ignore.Remove("gt") {
		t.Fatalf("expected second removal to report not found")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if !cfg.Enabled {
		t.Fatalf("expected tracking enabled by default")
	}
	if cfg.Threshold != 3 {
		t.Fatalf("expected threshold 3, got %d", cfg.Threshold)
	}
	if cfg.Mode != ModeConfirm {
		t.Fatalf("expected confirm mode, got %q", cfg.Mode)
	}
	if !cfg.Notify {
		t.Fatalf("expected notify enabled by default")
	}
}
