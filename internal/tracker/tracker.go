// Package tracker accumulates correction statistics and fires the
// decision engine when a pair crosses the configured threshold.
package tracker

import (
	"context"

	"go.uber.org/zap"

	"github.com/verte-zerg/autoalias/internal/config"
)

// Repository provides the persisted documents the tracker needs.
type Repository interface {
	LoadConfig() config.Config
	LoadStats() config.Stats
	SaveStats(config.Stats)
}

// DecisionEngine is invoked once a pair's count reaches the threshold.
// It may be invoked again on every later call for the same pair; the
// alias layer's duplicate-line check keeps that idempotent.
type DecisionEngine interface {
	HandleThresholdCrossing(wrong, correct string, count int)
}

// Journal receives one event per recorded correction. Optional.
type Journal interface {
	Append(ctx context.Context, wrong, correct string, countAfter int) error
}

// Tracker implements the correction recording flow.
type Tracker struct {
	repo    Repository
	engine  DecisionEngine
	journal Journal
	logger  *zap.Logger
}

// New creates a tracker. journal may be nil.
func New(repo Repository, engine DecisionEngine, journal Journal, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{repo: repo, engine: engine, journal: journal, logger: logger}
}

// RecordCorrection counts one (wrong, correct) occurrence. When tracking
// is disabled it does nothing at all. The count is persisted on every
// call, including for ignored pairs, so history keeps accumulating while
// a pair is suppressed.
func (t *Tracker) RecordCorrection(ctx context.Context, wrong, correct string) {
	cfg := t.repo.LoadConfig()
	if !cfg.Enabled {
		return
	}

	stats := t.repo.LoadStats()
	count := stats.Increment(wrong, correct)
	t.repo.SaveStats(stats)

	if t.journal != nil {
		if err := t.journal.Append(ctx, wrong, correct, count); err != nil {
			t.logger.Warn("failed to append journal event",
				zap.String("wrong", wrong), zap.Error(err))
		}
	}

	// A threshold below 1 triggers on the first occurrence.
	if count >= cfg.Threshold {
		t.engine.HandleThresholdCrossing(wrong, correct, count)
	}
}
