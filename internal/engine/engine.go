// Package engine decides what happens when a correction pair crosses the
// threshold: suggest and wait, create automatically, or suppress.
package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/verte-zerg/autoalias/internal/config"
)

// Decision is the outcome of an interactive confirmation.
type Decision int

// Confirmation outcomes.
const (
	DecisionYes Decision = iota
	DecisionNo
	DecisionUnavailable
)

// Prompter asks the user a yes/no question over an interactive channel.
// DecisionUnavailable means no such channel could be acquired.
type Prompter interface {
	Confirm(message string) Decision
}

// Repository provides the persisted documents the engine needs.
type Repository interface {
	LoadConfig() config.Config
	LoadIgnore() config.IgnoreList
	SaveIgnore(config.IgnoreList)
}

// AliasWriter appends alias definitions.
type AliasWriter interface {
	Create(name, command string) error
}

// Engine implements the threshold-crossing decision flow.
type Engine struct {
	repo     Repository
	aliases  AliasWriter
	prompter Prompter
	out      io.Writer
	logger   *zap.Logger
}

// New creates an engine. User-visible messages go to out.
func New(repo Repository, aliases AliasWriter, prompter Prompter, out io.Writer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{repo: repo, aliases: aliases, prompter: prompter, out: out, logger: logger}
}

// HandleThresholdCrossing runs the decision flow for a pair whose count
// has reached the threshold. The ignore check runs before any user
// interaction. In confirm mode a declined suggestion permanently ignores
// the alias name; an unavailable prompt degrades to automatic creation.
func (e *Engine) HandleThresholdCrossing(wrong, correct string, count int) {
	ignore := e.repo.LoadIgnore()
	if ignore.HasAlias(wrong) || ignore.HasCommand(correct) {
		return
	}

	cfg := e.repo.LoadConfig()
	if cfg.Mode == config.ModeConfirm && e.prompter != nil {
		message := fmt.Sprintf("\n⚠ Suggestion: create alias '%s' → '%s' (used %d times)\nCreate this alias? [y/n]: ",
			wrong, correct, count)
		switch e.prompter.Confirm(message) {
		case DecisionYes:
		case DecisionNo:
			if ignore.AddAlias(wrong) {
				e.repo.SaveIgnore(ignore)
			}
			fmt.Fprintf(e.out, "Alias '%s' added to ignore list\n", wrong)
			return
		case DecisionUnavailable:
			// No controlling terminal; degrade to auto-create.
			e.logger.Debug("no interactive terminal, creating alias without confirmation",
				zap.String("alias", wrong))
		}
	}

	if err := e.aliases.Create(wrong, correct); err != nil {
		e.logger.Error("failed to create alias",
			zap.String("alias", wrong), zap.String("command", correct), zap.Error(err))
		return
	}
	if cfg.Notify {
		fmt.Fprintf(e.out, "✓ Added alias: %s → %s\n", wrong, correct)
	}
}
