// Package archive persists an audit trail of research sessions.
//
// The live research record stays in memory for the lifetime of the
// process; the archive is a write-behind log backed by SQLite so past
// sessions can be reviewed after the server exits. It is an optional
// subsystem: if it fails to initialize, the server logs a warning and
// runs without it. All write methods are nil-safe so handlers never
// have to branch on its presence.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Session is one archived research initiation.
type Session struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	StartedAt string `json:"started_at"`
	NoteCount int    `json:"note_count"`
}

// Note is one archived process note.
type Note struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// Config holds archive store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default archive location under the user's
// home directory.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".deep-research")}
}

// Store is the session archive backed by SQLite.
type Store struct {
	db *sql.DB
}

// New creates a Store with the given configuration. It creates the
// data directory if needed, opens SQLite with WAL mode, and runs
// migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("archive: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "archive.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("archive: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("archive: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("archive: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			question   TEXT NOT NULL,
			started_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE TABLE IF NOT EXISTS notes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT    NOT NULL,
			note       TEXT    NOT NULL,
			created_at TEXT    NOT NULL DEFAULT (datetime('now')),
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		);

		CREATE INDEX IF NOT EXISTS idx_notes_session ON notes(session_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// StartSession archives a new research initiation and returns its ID.
// On a nil store it returns an empty ID and no error.
func (s *Store) StartSession(question string) (string, error) {
	if s == nil {
		return "", nil
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, question) VALUES (?, ?)`,
		id, question,
	)
	if err != nil {
		return "", fmt.Errorf("archive: insert session: %w", err)
	}
	return id, nil
}

// AddNote mirrors a process note under the given session. No-op on a
// nil store or empty session ID.
func (s *Store) AddNote(sessionID, note string) error {
	if s == nil || sessionID == "" {
		return nil
	}

	_, err := s.db.Exec(
		`INSERT INTO notes (session_id, note) VALUES (?, ?)`,
		sessionID, note,
	)
	if err != nil {
		return fmt.Errorf("archive: insert note: %w", err)
	}
	return nil
}

// Sessions returns archived sessions with note counts, newest first.
func (s *Store) Sessions(limit int) ([]Session, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT s.id, s.question, s.started_at, COUNT(n.id)
		FROM sessions s
		LEFT JOIN notes n ON n.session_id = s.id
		GROUP BY s.id
		ORDER BY s.started_at DESC, s.rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Question, &sess.StartedAt, &sess.NoteCount); err != nil {
			return nil, fmt.Errorf("archive: scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// SessionNotes returns all notes for a session in insertion order.
func (s *Store) SessionNotes(sessionID string) ([]Note, error) {
	if s == nil {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, session_id, note, created_at
		FROM notes
		WHERE session_id = ?
		ORDER BY id ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("archive: query notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.SessionID, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("archive: scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
