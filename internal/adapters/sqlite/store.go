package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/fodmaplab/reintro/pkg/domain"
)

// Store implements ports.ProtocolStore on a single SQLite table, one JSON
// payload per user.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) a SQLite-backed protocol store at path.
func New(path string) (*Store, error) {
	if path == "" {
		path = "reintro.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS protocols (
		user_id    TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create protocols table: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts the snapshot for a user.
func (s *Store) Save(ctx context.Context, userID string, state *domain.ProtocolState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal protocol state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO protocols (user_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		userID, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert protocol: %w", err)
	}
	return nil
}

// Load retrieves the snapshot for a user.
func (s *Store) Load(ctx context.Context, userID string) (*domain.ProtocolState, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM protocols WHERE user_id = ?`, userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProtocolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select protocol: %w", err)
	}

	var state domain.ProtocolState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("unmarshal protocol state: %w", err)
	}
	return &state, nil
}

// Delete removes the stored protocol.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM protocols WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete protocol: %w", err)
	}
	return nil
}

// List returns the user IDs with a stored protocol.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id FROM protocols ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("select protocols: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		users = append(users, id)
	}
	return users, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
