package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/event-repeater/internal/host"
	"github.com/rcliao/event-repeater/internal/model"
)

// Ordered list tables and their value column.
const (
	tblEventsSeen      = "events_seen"
	tblMailReceived    = "mail_received"
	tblResponses       = "responses_answered"
	tblMailTomorrow    = "mail_tomorrow"
	tblMailbox         = "mailbox"
	tblManualRepeaters = "manual_repeaters"
)

const stateLastEvent = "last_event"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite save at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS game (
		id  INTEGER PRIMARY KEY CHECK (id = 1),
		day INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS events_seen (
		pos   INTEGER PRIMARY KEY,
		value INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS mail_received (
		pos   INTEGER PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS responses_answered (
		pos   INTEGER PRIMARY KEY,
		value INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS mail_tomorrow (
		pos   INTEGER PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS mailbox (
		pos   INTEGER PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS manual_repeaters (
		pos   INTEGER PRIMARY KEY,
		value INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS current_event (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		event_id TEXT NOT NULL,
		commands TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// NewEvent mints a running event with a ULID.
func (s *SQLiteStore) NewEvent(commands []string) *model.Event {
	return &model.Event{ID: s.newID(), Commands: append([]string(nil), commands...)}
}

func (s *SQLiteStore) LoadGame(ctx context.Context) (*host.Game, error) {
	g := host.NewGame()

	err := s.db.QueryRowContext(ctx, `SELECT day FROM game WHERE id = 1`).Scan(&g.Day)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read day: %w", err)
	}

	events, err := readList[int](ctx, s.db, tblEventsSeen)
	if err != nil {
		return nil, err
	}
	mail, err := readList[string](ctx, s.db, tblMailReceived)
	if err != nil {
		return nil, err
	}
	responses, err := readList[int](ctx, s.db, tblResponses)
	if err != nil {
		return nil, err
	}
	g.Player.EventsSeen = host.NewCollection(events...)
	g.Player.MailReceived = host.NewCollection(mail...)
	g.Player.ResponsesAnswered = host.NewCollection(responses...)

	if g.MailForTomorrow, err = readList[string](ctx, s.db, tblMailTomorrow); err != nil {
		return nil, err
	}
	if g.Mailbox, err = readList[string](ctx, s.db, tblMailbox); err != nil {
		return nil, err
	}

	var id, commands string
	err = s.db.QueryRowContext(ctx, `SELECT event_id, commands FROM current_event WHERE id = 1`).Scan(&id, &commands)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("read current event: %w", err)
	default:
		ev := &model.Event{ID: id}
		if err := json.Unmarshal([]byte(commands), &ev.Commands); err != nil {
			return nil, fmt.Errorf("decode event commands: %w", err)
		}
		g.CurrentEvent = ev
	}

	return g, nil
}

func (s *SQLiteStore) SaveGame(ctx context.Context, g *host.Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := writeGame(ctx, tx, g); err != nil {
		return err
	}
	return tx.Commit()
}

func writeGame(ctx context.Context, tx *sql.Tx, g *host.Game) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO game (id, day) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET day = excluded.day`,
		g.Day); err != nil {
		return fmt.Errorf("write day: %w", err)
	}

	p := g.Player
	if err := replaceList(ctx, tx, tblEventsSeen, p.EventsSeen.Values()); err != nil {
		return err
	}
	if err := replaceList(ctx, tx, tblMailReceived, p.MailReceived.Values()); err != nil {
		return err
	}
	if err := replaceList(ctx, tx, tblResponses, p.ResponsesAnswered.Values()); err != nil {
		return err
	}
	if err := replaceList(ctx, tx, tblMailTomorrow, g.MailForTomorrow); err != nil {
		return err
	}
	if err := replaceList(ctx, tx, tblMailbox, g.Mailbox); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM current_event`); err != nil {
		return fmt.Errorf("clear current event: %w", err)
	}
	if ev := g.CurrentEvent; ev != nil {
		commands, _ := json.Marshal(ev.Commands)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO current_event (id, event_id, commands) VALUES (1, ?, ?)`,
			ev.ID, string(commands)); err != nil {
			return fmt.Errorf("write current event: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) ManualRepeaters(ctx context.Context) ([]int, error) {
	return readList[int](ctx, s.db, tblManualRepeaters)
}

func (s *SQLiteStore) SetManualRepeaters(ctx context.Context, ids []int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := replaceList(ctx, tx, tblManualRepeaters, ids); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) LastEvent(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, stateLastEvent).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

func (s *SQLiteStore) SetLastEvent(ctx context.Context, id string) error {
	return writeLastEvent(ctx, s.db, id)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// writeLastEvent stores the watcher marker; an empty id clears it.
func writeLastEvent(ctx context.Context, ex execer, id string) error {
	if id == "" {
		_, err := ex.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, stateLastEvent)
		return err
	}
	_, err := ex.ExecContext(ctx,
		`INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		stateLastEvent, id)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// readList returns a list table's values in position order. table is always
// one of the tbl constants.
func readList[T any](ctx context.Context, q querier, table string) ([]T, error) {
	rows, err := q.QueryContext(ctx, `SELECT value FROM `+table+` ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var v T
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func replaceList[T any](ctx context.Context, tx *sql.Tx, table string, vals []T) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	for i, v := range vals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+table+` (pos, value) VALUES (?, ?)`, i, v); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	return nil
}
