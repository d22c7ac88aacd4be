// Package config defines the persisted document types and path helpers.
package config

// Mode controls how the decision engine reacts to a threshold crossing.
type Mode string

// Supported modes.
const (
	ModeConfirm Mode = "confirm"
	ModeAuto    Mode = "auto"
)

// Config is the persisted configuration document.
type Config struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"`
	Mode      Mode `json:"mode"`
	Notify    bool `json:"notify"`
}

// Default returns the initial configuration used when no config document exists.
func Default() Config {
	return Config{
		Enabled:   true,
		Threshold: 3,
		Mode:      ModeConfirm,
		Notify:    true,
	}
}

// Stats maps wrong command -> correct command -> occurrence count.
type Stats map[string]map[string]int

// Increment adds one occurrence for the (wrong, correct) pair and returns
// the new count.
func (s Stats) Increment(wrong, correct string) int {
	if s[wrong] == nil {
		s[wrong] = map[string]int{}
	}
	s[wrong][correct]++
	return s[wrong][correct]
}

// Count returns the recorded occurrences for the (wrong, correct) pair.
func (s Stats) Count(wrong, correct string) int {
	return s[wrong][correct]
}

// IgnoreList is the persisted suppression document. Membership in either
// set blocks alias creation for the matching key at any count.
type IgnoreList struct {
	IgnoreAliases  []string `json:"ignore_aliases"`
	IgnoreCommands []string `json:"ignore_commands"`
}

// HasAlias reports whether the alias name is suppressed.
func (l IgnoreList) HasAlias(name string) bool {
	return contains(l.IgnoreAliases, name)
}

// HasCommand reports whether the target command is suppressed.
func (l IgnoreList) HasCommand(command string) bool {
	return contains(l.IgnoreCommands, command)
}

// AddAlias appends the alias name to the suppressed set. It returns false
// if the name was already present.
func (l *IgnoreList) AddAlias(name string) bool {
	if contains(l.IgnoreAliases, name) {
		return false
	}
	l.IgnoreAliases = append(l.IgnoreAliases, name)
	return true
}

// Remove deletes the item from both suppression sets. It returns whether
// anything was removed.
func (l *IgnoreList) Remove(item string) bool {
	removed := false
	if filtered, ok := without(l.IgnoreAliases, item); ok {
		l.IgnoreAliases = filtered
		removed = true
	}
	if filtered, ok := without(l.IgnoreCommands, item); ok {
		l.IgnoreCommands = filtered
		removed = true
	}
	return removed
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func without(items []string, target string) ([]string, bool) {
	filtered := make([]string, 0, len(items))
	found := false
	for _, item := range items {
		if item == target {
			found = true
			continue
		}
		filtered = append(filtered, item)
	}
	if !found {
		return items, false
	}
	return filtered, true
}
