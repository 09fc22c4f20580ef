// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a SQLite history of fetched Trends results so
// earlier fetches can be listed and re-read without hitting the upstream.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/trends/pkg/types"
)

// ErrNotFound is returned by Get for an unknown entry id.
var ErrNotFound = errors.New("archive entry not found")

const defaultMaxResults = 20

// storedTimeLayout is fixed-width so fetched_at sorts lexically.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one archived fetch.
type Entry struct {
	ID         int64
	Keyword    string
	SearchType types.SearchType
	// TimeRange is the encoded "<start> <end>" range sent upstream.
	TimeRange string
	FetchedAt time.Time
	Body      string
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Keyword    string
	SearchType types.SearchType
	// Limit caps the entries returned. Zero uses the store default.
	Limit int
}

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the archive database at cfg.Path.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "trends.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS fetches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			keyword TEXT NOT NULL,
			search_type TEXT NOT NULL,
			time_range TEXT,
			fetched_at TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fetches_keyword ON fetches(keyword)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e and returns its new id. A zero FetchedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.FetchedAt.IsZero() {
		e.FetchedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO fetches (keyword, search_type, time_range, fetched_at, body) VALUES (?, ?, ?, ?, ?)`,
		e.Keyword, string(e.SearchType), e.TimeRange, e.FetchedAt.UTC().Format(storedTimeLayout), e.Body,
	)
	if err != nil {
		return 0, fmt.Errorf("recording fetch: %w", err)
	}
	return res.LastInsertId()
}

// List returns archived entries newest first. Bodies are included.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		conds []string
		args  []any
	)
	if f.Keyword != "" {
		conds = append(conds, "keyword = ?")
		args = append(args, f.Keyword)
	}
	if f.SearchType != "" {
		conds = append(conds, "search_type = ?")
		args = append(args, string(f.SearchType))
	}

	var qb strings.Builder
	qb.WriteString(`SELECT id, keyword, search_type, time_range, fetched_at, body FROM fetches`)
	if len(conds) > 0 {
		qb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	qb.WriteString(" ORDER BY fetched_at DESC, id DESC LIMIT ?")
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing fetches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id int64) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, keyword, search_type, time_range, fetched_at, body FROM fetches WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e          Entry
		searchType string
		timeRange  sql.NullString
		fetchedAt  string
	)
	if err := sc.Scan(&e.ID, &e.Keyword, &searchType, &timeRange, &fetchedAt, &e.Body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning fetch: %w", err)
	}
	e.SearchType = types.SearchType(searchType)
	e.TimeRange = timeRange.String
	t, err := time.Parse(storedTimeLayout, fetchedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing fetched_at %q: %w", fetchedAt, err)
	}
	e.FetchedAt = t
	return e, nil
}
