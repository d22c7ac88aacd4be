// Package report renders the plain-text output for stats and list views.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/autoalias/internal/aliasfile"
	"github.com/verte-zerg/autoalias/internal/config"
	"github.com/verte-zerg/autoalias/internal/engine"
	"github.com/verte-zerg/autoalias/internal/journal"
)

// Candidate is one (wrong, correct) pair prepared for display.
type Candidate struct {
	Wrong   string
	Correct string
	Count   int
	State   engine.PairState
}

// BuildCandidates flattens the stats document into display rows, highest
// count first, with the derived lifecycle state per pair.
func BuildCandidates(cfg config.Config, stats config.Stats, ignore config.IgnoreList, aliases []aliasfile.Alias) []Candidate {
	lookup := aliasLookup(aliases)
	var candidates []Candidate
	for wrong, corrections := range stats {
		for correct, count := range corrections {
			candidates = append(candidates, Candidate{
				Wrong:   wrong,
				Correct: correct,
				Count:   count,
				State:   engine.ClassifyPair(cfg, stats, ignore, lookup, wrong, correct),
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		if candidates[i].Wrong != candidates[j].Wrong {
			return candidates[i].Wrong < candidates[j].Wrong
		}
		return candidates[i].Correct < candidates[j].Correct
	})
	return candidates
}

func aliasLookup(aliases []aliasfile.Alias) engine.AliasLookup {
	return func(name, command string) bool {
		for _, alias := range aliases {
			if alias.Name == name && alias.Command == command {
				return true
			}
		}
		return false
	}
}

// RenderCandidates prints the candidates table.
func RenderCandidates(w io.Writer, candidates []Candidate) error {
	if len(candidates) == 0 {
		_, err := fmt.Fprintln(w, "No statistics yet")
		return err
	}
	if _, err := fmt.Fprintln(w, "Current candidates:"); err != nil {
		return err
	}
	headers := []string{"Wrong", "Correct", "Count", "State"}
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			c.Wrong,
			c.Correct,
			fmt.Sprintf("%d", c.Count),
			c.State.String(),
		})
	}
	return writeTable(w, headers, rows, map[int]bool{2: true})
}

// RenderAliases prints the created aliases.
func RenderAliases(w io.Writer, aliases []aliasfile.Alias) error {
	if len(aliases) == 0 {
		_, err := fmt.Fprintln(w, "No aliases created yet")
		return err
	}
	if _, err := fmt.Fprintln(w, "Created aliases:"); err != nil {
		return err
	}
	headers := []string{"Alias", "Command"}
	rows := make([][]string, 0, len(aliases))
	for _, alias := range aliases {
		rows = append(rows, []string{alias.Name, alias.Command})
	}
	return writeTable(w, headers, rows, nil)
}

// RenderIgnore prints both suppression sets.
func RenderIgnore(w io.Writer, ignore config.IgnoreList) error {
	if _, err := fmt.Fprintln(w, "Ignored aliases:"); err != nil {
		return err
	}
	for _, name := range ignore.IgnoreAliases {
		if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\nIgnored commands:"); err != nil {
		return err
	}
	for _, command := range ignore.IgnoreCommands {
		if _, err := fmt.Fprintf(w, "  %s\n", command); err != nil {
			return err
		}
	}
	return nil
}

// RenderEvents prints recent journal events, newest first.
func RenderEvents(w io.Writer, events []journal.Event) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No recent activity")
		return err
	}
	if _, err := fmt.Fprintln(w, "Recent corrections:"); err != nil {
		return err
	}
	headers := []string{"When", "Wrong", "Correct", "Count"}
	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.RecordedAt.Local().Format("2006-01-02 15:04"),
			event.Wrong,
			event.Correct,
			fmt.Sprintf("%d", event.CountAfter),
		})
	}
	return writeTable(w, headers, rows, map[int]bool{3: true})
}

func writeTable(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) error {
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}
