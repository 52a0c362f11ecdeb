// Package storage keeps the finished games of the running process in an
// in-memory SQLite database. Nothing is written to disk; the leaderboard is
// gone when the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN is a private in-memory database. Each connection to it would be
// a separate database, so the pool is held at one connection.
const memoryDSN = ":memory:"

// Store manages the in-memory leaderboard for one process.
type Store struct {
	db      *sql.DB
	session string
}

// Result is one finished game.
type Result struct {
	ID        int64
	SessionID string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Summary contains aggregated statistics over all finished games.
type Summary struct {
	Games      int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates a fresh in-memory leaderboard and runs migrations.
// Every result saved through the store is stamped with a new session ID.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, session: uuid.NewString()}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Session returns the ID stamped on results saved by this store.
func (s *Store) Session() string {
	return s.session
}

// Close closes the database connection, discarding every result.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(score, level int) (int64, error) {
	if score < 0 || level < 1 {
		return 0, fmt.Errorf("storage: invalid result score=%d level=%d", score, level)
	}

	result, err := s.db.Exec(
		"INSERT INTO results (session_id, score, level) VALUES (?, ?, ?)",
		s.session, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results, highest score first. Ties keep
// the order the games finished in.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, score, level, created_at
		 FROM results
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var e Result
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summary retrieves aggregated statistics over all finished games.
func (s *Store) Summary() (Summary, error) {
	var sum Summary

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0), COALESCE(AVG(score), 0)
		 FROM results`,
	).Scan(&sum.Games, &sum.HighScore, &sum.BestLevel, &sum.AvgScore)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results ORDER BY id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Summary{}, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	return sum, nil
}

// parseTime handles the datetime column as either time.Time or string,
// depending on how the driver returns it.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
