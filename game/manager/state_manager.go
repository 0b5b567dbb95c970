package manager

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	AppDirName = "Snake"
	ScoreFile  = "highscore.json"
)

// ErrBadScore is returned when the stored best score is not a non-negative
// integer.
var ErrBadScore = errors.New("stored best score is invalid")

type scoreRecord struct {
	HighScore any `json:"highscore"`
}

// StateManager keeps the best score in a small JSON file.
type StateManager struct {
	path string
}

func NewStateManager(path string) *StateManager {
	return &StateManager{path: path}
}

// DefaultDataDir is %APPDATA%/Snake when APPDATA is set and ~/.snake
// otherwise.
func DefaultDataDir() (string, error) {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".snake"), nil
}

func (sm *StateManager) Path() string {
	return sm.path
}

// LoadBestScore returns 0 together with the cause when the file is missing or
// does not hold a non-negative integer.
func (sm *StateManager) LoadBestScore() (int, error) {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return 0, err
	}

	var rec scoreRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", sm.path, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return 0, fmt.Errorf("failed to parse %s: trailing data after best score", sm.path)
	}

	switch v := rec.HighScore.(type) {
	case nil:
		return 0, nil
	case json.Number:
		score, err := v.Int64()
		if err != nil || score < 0 {
			return 0, fmt.Errorf("%w: %v", ErrBadScore, v)
		}
		return int(score), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrBadScore, v)
	}
}

func (sm *StateManager) SaveBestScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrBadScore, score)
	}
	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.Marshal(scoreRecord{HighScore: score})
	if err != nil {
		return fmt.Errorf("failed to marshal best score: %w", err)
	}
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write best score: %w", err)
	}
	return nil
}
