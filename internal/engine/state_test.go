package engine

import (
	"testing"

	"github.com/verte-zerg/autoalias/internal/config"
)

func TestClassifyPair(t *testing.T) {
	cfg := config.Config{Enabled: true, Threshold: 3, Mode: config.ModeAuto}
	stats := config.Stats{
		"gt": {"git": 2},
		"dc": {"docker": 4},
	}
	ignore := config.IgnoreList{IgnoreAliases: []string{"ks"}}
	hasAlias := func(name, command string) bool {
		return name == "vm" && command == "vim"
	}

	cases := []struct {
		name    string
		wrong   string
		correct string
		want    PairState
	}{
		{"unseen pair", "zz", "ls", StateUnseen},
		{"below threshold", "gt", "git", StateCounting},
		{"at or past threshold", "dc", "docker", StateSuggested},
		{"ignored alias", "ks", "kubectl", StateIgnored},
		{"existing alias", "vm", "vim", StateCreated},
	}
	for _, tc := range cases {
		if got := ClassifyPair(cfg, stats, ignore, hasAlias, tc.wrong, tc.correct); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestClassifyPairIgnoreWinsOverCreated(t *testing.T) {
	cfg := config.Config{Threshold: 1}
	ignore := config.IgnoreList{IgnoreAliases: []string{"gt"}}
	hasAlias := func(string, string) bool { return true }
	if got := ClassifyPair(cfg, config.Stats{}, ignore, hasAlias, "gt", "git"); got != StateIgnored {
		t.Fatalf("expected ignored to win, got %v", got)
	}
}

func TestClassifyPairZeroThresholdTriggersImmediately(t *testing.T) {
	cfg := config.Config{Threshold: 0}
	stats := config.Stats{"gt": {"git": 1}}
	if got := ClassifyPair(cfg, stats, config.IgnoreList{}, nil, "gt", "git"); got != StateSuggested {
		t.Fatalf("expected suggested at threshold 0, got %v", got)
	}
}

func TestPairStateString(t *testing.T) {
	labels := map[PairState]string{
		StateUnseen:    "unseen",
		StateCounting:  "counting",
		StateSuggested: "suggested",
		StateIgnored:   "ignored",
		StateCreated:   "created",
	}
	for state, want := range labels {
		if got := state.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
