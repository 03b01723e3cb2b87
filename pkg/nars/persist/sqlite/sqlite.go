// Package sqlite implements a record.Recorder backed by a durable,
// append-only event log, grounded on korel's store/sqlite package (same
// WAL-mode-open / migrate-on-open / prepared-statement style), repurposed
// from a document/PMI store to an audit trail of cycle boundaries and
// admitted/rejected tasks.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/nars/pkg/nars/record"
)

// Recorder persists every notification record.Recorder defines to a
// SQLite database, one row per event. It is always active: a driver
// that doesn't want persistence simply never installs one, leaving
// Memory's default record.Null in place.
type Recorder struct {
	db  *sql.DB
	ctx context.Context
}

// Open opens (creating if absent) a SQLite database at path in WAL mode
// and ensures the event-log schema exists.
func Open(ctx context.Context, path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Recorder{db: db, ctx: ctx}, nil
}

// Close closes the underlying database connection.
func (r *Recorder) Close() error {
	return r.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS cycles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	clock INTEGER NOT NULL,
	boundary TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS concepts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	term TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS task_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	action TEXT NOT NULL,
	task TEXT NOT NULL,
	reason TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	message TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// IsActive always reports true: a Recorder was deliberately installed to
// persist every event, unlike record.Null's permanent false.
func (r *Recorder) IsActive() bool { return true }

func (r *Recorder) OnCycleStart(clock int64) {
	r.insert("INSERT INTO cycles (clock, boundary) VALUES (?, ?)", clock, "start")
}

func (r *Recorder) OnCycleEnd(clock int64) {
	r.insert("INSERT INTO cycles (clock, boundary) VALUES (?, ?)", clock, "end")
}

func (r *Recorder) OnConceptNew(term string) {
	r.insert("INSERT INTO concepts (term) VALUES (?)", term)
}

func (r *Recorder) OnTaskAdd(task, reason string) {
	r.insert("INSERT INTO task_events (action, task, reason) VALUES (?, ?, ?)", "add", task, reason)
}

func (r *Recorder) OnTaskRemove(task, reason string) {
	r.insert("INSERT INTO task_events (action, task, reason) VALUES (?, ?, ?)", "remove", task, reason)
}

func (r *Recorder) Append(message string) {
	r.insert("INSERT INTO notes (message) VALUES (?)", message)
}

// insert swallows write errors rather than propagating them: a Recorder
// is observational, and a driver that wants persistence failures to be
// fatal should check r.db's health itself rather than have every hot-path
// notification return an error the core has nowhere to route.
func (r *Recorder) insert(query string, args ...any) {
	_, _ = r.db.ExecContext(r.ctx, query, args...)
}

var _ record.Recorder = (*Recorder)(nil)
