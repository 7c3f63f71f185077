package localstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

// Well-known keys for the persisted client state. These survive process
// restarts and are the only state shared across runs besides the event log.
const (
	KeyToken        = "token"
	KeyTheme        = "theme"
	KeyNotifyCursor = "notifications:last_poll"
)

// ErrNoValue is returned by GetKV when a key has never been set.
var ErrNoValue = errors.New("no value")

// DB wraps the sqlite database holding the client's persisted state: a
// key/value table for the token and theme flag, and an append-only event
// log recording mutation outcomes for diagnostics.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
	  key TEXT PRIMARY KEY,
	  value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS events (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  ts INTEGER NOT NULL,
	  type TEXT NOT NULL,
	  entity_id TEXT,
	  outcome TEXT NOT NULL,
	  detail TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts);
	`)
	return err
}

// GetKV returns the value for key, or ErrNoValue if unset.
func (d *DB) GetKV(ctx context.Context, key string) (string, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoValue
		}
		return "", err
	}
	return v, nil
}

func (d *DB) PutKV(ctx context.Context, key, value string) error {
	_, err := d.sql.ExecContext(ctx, `INSERT INTO kv(key, value) VALUES(?,?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	return err
}

func (d *DB) DeleteKV(ctx context.Context, key string) error {
	_, err := d.sql.ExecContext(ctx, `DELETE FROM kv WHERE key=?`, key)
	return err
}

// Event is a stored diagnostic event.
type Event struct {
	TS       time.Time
	Type     string
	EntityID string
	Outcome  string
	Detail   string
}

// AppendEvent records a mutation outcome. Detail is JSON-encoded if non-nil.
func (d *DB) AppendEvent(ctx context.Context, ts time.Time, typ, entityID, outcome string, detail any) error {
	var ds *string
	if detail != nil {
		b, _ := json.Marshal(detail)
		s := string(b)
		ds = &s
	}
	_, err := d.sql.ExecContext(ctx, `INSERT INTO events(ts, type, entity_id, outcome, detail) VALUES(?,?,?,?,?)`, ts.Unix(), typ, entityID, outcome, ds)
	return err
}

// LoadEventsRange returns events in [start, end), optionally filtered by type.
func (d *DB) LoadEventsRange(ctx context.Context, start, end time.Time, typ string) ([]Event, error) {
	var rows *sql.Rows
	var err error
	if typ == "" {
		rows, err = d.sql.QueryContext(ctx, `SELECT ts, type, COALESCE(entity_id,''), outcome, COALESCE(detail,'') FROM events WHERE ts>=? AND ts<? ORDER BY ts`, start.Unix(), end.Unix())
	} else {
		rows, err = d.sql.QueryContext(ctx, `SELECT ts, type, COALESCE(entity_id,''), outcome, COALESCE(detail,'') FROM events WHERE ts>=? AND ts<? AND type=? ORDER BY ts`, start.Unix(), end.Unix(), typ)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var ts int64
		var e Event
		if err := rows.Scan(&ts, &e.Type, &e.EntityID, &e.Outcome, &e.Detail); err != nil {
			return nil, err
		}
		e.TS = time.Unix(ts, 0).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountEventsWithin counts events of a type in [start, end).
func (d *DB) CountEventsWithin(ctx context.Context, start, end time.Time, typ string) (int, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT COUNT(1) FROM events WHERE ts>=? AND ts<? AND type=?`, start.Unix(), end.Unix(), typ)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
