// Package storage provides SQLite-based persistence for finished game
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session represents one recorded run of a game: how long it ran, how
// the territory ended up, and optionally a JSON snapshot of the final
// board for later inspection.
type Session struct {
	ID         int64
	GameID     string
	DayCells   int
	NightCells int
	Ticks      int64
	Flips      int
	DurationMs int64
	FinalState string // JSON snapshot, may be empty
	CreatedAt  time.Time
}

// SessionStats contains aggregated statistics for a game.
type SessionStats struct {
	GameID        string
	SessionsCount int
	TotalFlips    int64
	MaxFlips      int
	AvgFlips      float64
	TotalPlayMs   int64
	LastPlayed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			day_cells INTEGER NOT NULL,
			night_cells INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			flips INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			final_state TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(game_id, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// scanTime converts a scanned created_at value to a time.Time.
// The driver may hand back either a time.Time or its string form.
func scanTime(v any) time.Time {
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

// SaveSession records a finished run. Returns the inserted ID.
func (s *Store) SaveSession(sess Session) (int64, error) {
	var finalState sql.NullString
	if sess.FinalState != "" {
		finalState = sql.NullString{String: sess.FinalState, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (game_id, day_cells, night_cells, ticks, flips, duration_ms, final_state)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.GameID,
		sess.DayCells,
		sess.NightCells,
		sess.Ticks,
		sess.Flips,
		sess.DurationMs,
		finalState,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest N sessions for the given game,
// newest first.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, day_cells, night_cells, ticks, flips, duration_ms, final_state, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var finalState sql.NullString
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.GameID,
			&sess.DayCells,
			&sess.NightCells,
			&sess.Ticks,
			&sess.Flips,
			&sess.DurationMs,
			&finalState,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if finalState.Valid {
			sess.FinalState = finalState.String
		}
		sess.CreatedAt = scanTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// LastSession returns the most recent session for the given game, or
// nil when none have been recorded yet.
func (s *Store) LastSession(gameID string) (*Session, error) {
	sessions, err := s.RecentSessions(gameID, 1)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (*SessionStats, error) {
	stats := &SessionStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(flips), 0), COALESCE(MAX(flips), 0),
		        COALESCE(AVG(flips), 0), COALESCE(SUM(duration_ms), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.SessionsCount, &stats.TotalFlips, &stats.MaxFlips, &stats.AvgFlips, &stats.TotalPlayMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = scanTime(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes all sessions for the given game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
