// Package stats keeps visitor and command counters of the HTTP API in SQLite.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/master-bogdan/termfolio/common"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors (timestamp)`,
	`CREATE TABLE IF NOT EXISTS commands (
		name TEXT PRIMARY KEY,
		runs INTEGER NOT NULL DEFAULT 0,
		last_run DATETIME
	)`,
}

type Visit struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type CommandCount struct {
	Name    string    `json:"name"`
	Runs    int64     `json:"runs"`
	LastRun time.Time `json:"last_run"`
}

type Summary struct {
	TotalVisitors  int64          `json:"total_visitors"`
	UniqueVisitors int64          `json:"unique_visitors"`
	VisitorsToday  int64          `json:"visitors_today"`
	TotalCommands  int64          `json:"total_commands"`
	TopCommands    []CommandCount `json:"top_commands"`
}

// Store serializes writes; SQLite allows only one writer anyway.
type Store struct {
	sync.Mutex
	db    *sql.DB
	path  string
	Clock func() time.Time
}

// Open creates the database file (and its folder) when missing and brings
// the schema up to date. ":memory:" is accepted for throwaway stores.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("stats folder for %q: %w", path, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening stats %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	store := &Store{db: db, path: path, Clock: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	common.Debug("Stats database %q is ready.", path)
	return store, nil
}

func (it *Store) migrate() error {
	for at, statement := range migrations {
		if _, err := it.db.Exec(statement); err != nil {
			return fmt.Errorf("stats migration %d: %w", at+1, err)
		}
	}
	return nil
}

func (it *Store) Path() string {
	return it.path
}

func (it *Store) RecordVisit(visit Visit) error {
	it.Lock()
	defer it.Unlock()
	if visit.Timestamp.IsZero() {
		visit.Timestamp = it.Clock()
	}
	_, err := it.db.Exec(`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		visit.HashedIP, visit.UserAgent, visit.Path, visit.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordCommand counts one run of a command; names are stored lower-case.
func (it *Store) RecordCommand(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return nil
	}
	it.Lock()
	defer it.Unlock()
	_, err := it.db.Exec(`INSERT INTO commands (name, runs, last_run) VALUES (?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET runs = runs + 1, last_run = excluded.last_run`,
		name, it.Clock().UTC())
	if err != nil {
		return fmt.Errorf("recording command %q: %w", name, err)
	}
	return nil
}

// TopCommands is the n most run commands, ties broken by name.
func (it *Store) TopCommands(n int) ([]CommandCount, error) {
	if n <= 0 {
		return []CommandCount{}, nil
	}
	it.Lock()
	defer it.Unlock()
	rows, err := it.db.Query(`SELECT name, runs, last_run FROM commands ORDER BY runs DESC, name ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("top commands: %w", err)
	}
	defer rows.Close()

	result := []CommandCount{}
	for rows.Next() {
		var count CommandCount
		if err := rows.Scan(&count.Name, &count.Runs, &count.LastRun); err != nil {
			return nil, fmt.Errorf("top commands: %w", err)
		}
		result = append(result, count)
	}
	return result, rows.Err()
}

func (it *Store) Summary() (*Summary, error) {
	top, err := it.TopCommands(10)
	if err != nil {
		return nil, err
	}
	summary := &Summary{TopCommands: top}

	it.Lock()
	defer it.Unlock()
	midnight := it.Clock().UTC().Truncate(24 * time.Hour)
	queries := []struct {
		query  string
		args   []interface{}
		target *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &summary.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &summary.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []interface{}{midnight}, &summary.VisitorsToday},
		{`SELECT COALESCE(SUM(runs), 0) FROM commands`, nil, &summary.TotalCommands},
	}
	for _, step := range queries {
		if err := it.db.QueryRow(step.query, step.args...).Scan(step.target); err != nil {
			return nil, fmt.Errorf("stats summary: %w", err)
		}
	}
	return summary, nil
}

// Prune drops visits older than the retention period.
func (it *Store) Prune(retention time.Duration) (int64, error) {
	it.Lock()
	defer it.Unlock()
	result, err := it.db.Exec(`DELETE FROM visitors WHERE timestamp < ?`, it.Clock().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("pruning visits: %w", err)
	}
	return result.RowsAffected()
}

func (it *Store) Close() error {
	it.Lock()
	defer it.Unlock()
	return it.db.Close()
}
