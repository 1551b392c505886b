// Package state persists the last successful run marker used by the
// file-set resolver in changed-only mode.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const markerFileName = "state.json"

// Marker records the point-in-time reference of the last successful run.
type Marker struct {
	RunID     string    `json:"run_id"`
	Head      string    `json:"head"`
	Timestamp time.Time `json:"timestamp"`
}

// Store handles marker persistence inside the repository's git directory.
type Store struct {
	path string
}

// NewStore creates a store rooted at gitDir, e.g. <repo>/.git.
func NewStore(gitDir string) *Store {
	return &Store{
		path: filepath.Join(gitDir, "commitgate", markerFileName),
	}
}

// Load returns the saved marker, or nil if no successful run is recorded.
func (s *Store) Load() (*Marker, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Fresh repository
		}
		return nil, fmt.Errorf("failed to read run marker; %w", err)
	}

	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse run marker; %w", err)
	}

	return &m, nil
}

// Save persists the marker to disk.
func (s *Store) Save(m Marker) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory; %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run marker; %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

// Clear removes the marker, forcing the next changed-only run to consider
// every tracked file.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove run marker; %w", err)
	}
	return nil
}

// Path returns the marker file location.
func (s *Store) Path() string {
	return s.path
}
