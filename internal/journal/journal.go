// Package journal handles SQLite persistence for the correction log.
package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Event is one recorded correction.
type Event struct {
	ID         int64
	RecordedAt time.Time
	Wrong      string
	Correct    string
	CountAfter int
}

// Journal wraps SQLite access for the append-only correction log. The log
// is observational: nothing in the decision path reads it.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database and applies migrations.
func Open(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	journal := &Journal{db: db}
	if err := journal.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return journal, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS corrections (
			id INTEGER PRIMARY KEY,
			recorded_at TEXT NOT NULL,
			wrong TEXT NOT NULL,
			correct TEXT NOT NULL,
			count_after INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_corrections_recorded_at ON corrections(recorded_at);`,
	}
	for _, stmt := range stmts {
		if _, err := j.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append stores one correction event.
func (j *Journal) Append(ctx context.Context, wrong, correct string, countAfter int) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO corrections (recorded_at, wrong, correct, count_after) VALUES (?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339Nano),
		wrong,
		correct,
		countAfter,
	)
	return err
}

// Recent returns the latest events, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, recorded_at, wrong, correct, count_after
		 FROM corrections
		 ORDER BY id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var events []Event
	for rows.Next() {
		var event Event
		var recordedAt string
		if err := rows.Scan(&event.ID, &recordedAt, &event.Wrong, &event.Correct, &event.CountAfter); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, err
		}
		event.RecordedAt = parsed
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
