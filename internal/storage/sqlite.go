// Package storage keeps the results of the sessions played by this process.
// The SQLite database lives in memory only; nothing is written to disk and the
// log disappears when the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory results database. It is safe for concurrent
// use; every SSH session shares one store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Result is one finished or abandoned session.
type Result struct {
	ID        int64
	SessionID string
	Player    string
	Activity  string
	Score     int
	Reason    string // "completed" or "cancelled"
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one activity.
type Stats struct {
	Activity  string
	Completed int
	Cancelled int
	Best      int
	AvgScore  float64
}

// OpenMemory creates an empty in-memory store.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database; keep exactly one.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			activity TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_activity ON results(activity, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores one session result and returns its row ID.
// A session can be recorded only once.
func (s *Store) Record(r Result) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (session_id, player, activity, score, end_reason, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Player, r.Activity, r.Score, r.Reason,
		r.Duration.Milliseconds(), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent returns the latest results, newest first.
func (s *Store) Recent(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, activity, score, end_reason, duration_ms, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var durationMs, createdMs int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Player, &r.Activity, &r.Score, &r.Reason, &durationMs, &createdMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdMs)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Best returns the highest completed score for an activity, or 0.
func (s *Store) Best(activity string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE activity = ? AND end_reason = 'completed'",
		activity,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ActivityStats aggregates the results of one activity.
func (s *Store) ActivityStats(activity string) (Stats, error) {
	stats := Stats{Activity: activity}
	err := s.db.QueryRow(
		`SELECT
			COUNT(CASE WHEN end_reason = 'completed' THEN 1 END),
			COUNT(CASE WHEN end_reason = 'cancelled' THEN 1 END),
			COALESCE(MAX(CASE WHEN end_reason = 'completed' THEN score END), 0),
			COALESCE(AVG(CASE WHEN end_reason = 'completed' THEN score END), 0)
		 FROM results WHERE activity = ?`,
		activity,
	).Scan(&stats.Completed, &stats.Cancelled, &stats.Best, &stats.AvgScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get activity stats: %w", err)
	}
	return stats, nil
}
