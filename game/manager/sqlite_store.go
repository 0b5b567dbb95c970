package manager

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DBFile = "snake.db"

// SQLiteStore keeps the best score in a single-row sqlite table.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS best_score (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadBestScore() (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT score FROM best_score WHERE id = 1`).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read best score: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadScore, score)
	}
	return score, nil
}

func (s *SQLiteStore) SaveBestScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrBadScore, score)
	}
	_, err := s.db.Exec(`INSERT INTO best_score (id, score) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET score = excluded.score`, score)
	if err != nil {
		return fmt.Errorf("failed to write best score: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
