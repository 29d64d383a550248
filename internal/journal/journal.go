package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/giantswarm/finalizerkit/internal/core"

	// Register the pure-Go SQLite driver (no CGO required).
	_ "modernc.org/sqlite"
)

// Compile-time check that Journal can serve as a mutation recorder.
var _ core.Recorder = (*Journal)(nil)

// busyTimeoutMillis is the SQLite busy timeout. Writes are short single-row
// inserts; 5 seconds comfortably covers contention from a concurrent reader.
const busyTimeoutMillis = 5000

// createTableStmt creates the mutations table on first open. The schema is
// append-only; rows are never updated or deleted by this package.
const createTableStmt = `
CREATE TABLE IF NOT EXISTS mutations (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	at               TEXT NOT NULL,
	op               TEXT NOT NULL,
	grp              TEXT NOT NULL,
	version          TEXT NOT NULL,
	namespace        TEXT NOT NULL,
	plural           TEXT NOT NULL,
	name             TEXT NOT NULL,
	token            TEXT NOT NULL,
	resource_version TEXT NOT NULL
)`

// Journal is an append-only SQLite record of committed finalizer mutations.
// It implements core.Recorder and is safe for concurrent use within one
// process; the file lock taken at Open serializes access across processes.
type Journal struct {
	db *sql.DB
	fl *flock.Flock
}

// Open opens (or creates) the journal database at path and acquires an
// exclusive cross-process lock on "<path>.lock". ctx bounds the lock wait:
// if another process holds the journal, Open blocks until it is released or
// ctx is done.
func Open(ctx context.Context, path string) (*Journal, error) {
	fl, err := acquireFileLock(ctx, path+".lock")
	if err != nil {
		return nil, err
	}

	// WAL mode with a busy timeout and relaxed synchronous mode: the journal
	// is a debugging record, not the source of truth, so reduced fsync
	// pressure is an acceptable trade.
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		path, busyTimeoutMillis,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		releaseFileLock(core.Logger(), fl)
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	// Single connection — short-lived statements, no need for a pool.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createTableStmt); err != nil {
		closeErr := db.Close()
		releaseFileLock(core.Logger(), fl)
		if closeErr != nil {
			core.Logger().Warn("journal: close after failed init", "error", closeErr)
		}
		return nil, fmt.Errorf("initialize journal %s: %w", path, err)
	}

	return &Journal{db: db, fl: fl}, nil
}

// Record appends one committed mutation. Implements core.Recorder.
func (j *Journal) Record(ctx context.Context, m core.Mutation) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO mutations (at, op, grp, version, namespace, plural, name, token, resource_version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Time.UTC().Format(time.RFC3339Nano),
		m.Op,
		m.Resource.Group,
		m.Resource.Version,
		m.Resource.Namespace,
		m.Resource.Plural,
		m.Name,
		m.Token,
		m.ResourceVersion,
	)
	if err != nil {
		return fmt.Errorf("record mutation: %w", err)
	}
	return nil
}

// Recent returns up to limit mutations, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]core.Mutation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("journal limit must be greater than 0, got %d", limit)
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT at, op, grp, version, namespace, plural, name, token, resource_version
		 FROM mutations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query mutations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			core.Logger().Warn("journal: close rows", "error", closeErr)
		}
	}()

	var out []core.Mutation
	for rows.Next() {
		var m core.Mutation
		var at string
		if err := rows.Scan(
			&at,
			&m.Op,
			&m.Resource.Group,
			&m.Resource.Version,
			&m.Resource.Namespace,
			&m.Resource.Plural,
			&m.Name,
			&m.Token,
			&m.ResourceVersion,
		); err != nil {
			return nil, fmt.Errorf("scan mutation: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse mutation timestamp %q: %w", at, err)
		}
		m.Time = parsed
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mutations: %w", err)
	}
	return out, nil
}

// Close closes the database and releases the cross-process lock. The Journal
// must not be used after Close.
func (j *Journal) Close() error {
	err := j.db.Close()
	releaseFileLock(core.Logger(), j.fl)
	if err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return nil
}
