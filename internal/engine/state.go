package engine

import "github.com/verte-zerg/autoalias/internal/config"

// PairState is the lifecycle position of a (wrong, correct) pair. It is
// never persisted; it is derived on demand from the documents.
type PairState int

// Pair lifecycle states.
const (
	StateUnseen PairState = iota
	StateCounting
	StateSuggested
	StateIgnored
	StateCreated
)

// String returns the display label for the state.
func (s PairState) String() string {
	switch s {
	case StateCounting:
		return "counting"
	case StateSuggested:
		return "suggested"
	case StateIgnored:
		return "ignored"
	case StateCreated:
		return "created"
	default:
		return "unseen"
	}
}

// AliasLookup reports whether an alias with the exact (name, command)
// pair exists.
type AliasLookup func(name, command string) bool

// ClassifyPair derives the state of a pair from the current documents.
// Ignore membership wins over an existing alias, mirroring the order of
// checks in HandleThresholdCrossing.
func ClassifyPair(cfg config.Config, stats config.Stats, ignore config.IgnoreList, hasAlias AliasLookup, wrong, correct string) PairState {
	if ignore.HasAlias(wrong) || ignore.HasCommand(correct) {
		return StateIgnored
	}
	if hasAlias != nil && hasAlias(wrong, correct) {
		return StateCreated
	}
	count := stats.Count(wrong, correct)
	switch {
	case count == 0:
		return StateUnseen
	case count < cfg.Threshold:
		return StateCounting
	default:
		return StateSuggested
	}
}
