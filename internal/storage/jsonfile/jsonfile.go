// Package jsonfile stores the player roster as a single JSON document
// on disk. Writes go through a temp file and an atomic rename so a
// crash mid-save never corrupts the previous good snapshot.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/game/actor"
)

// Store is a file-backed roster store. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// New creates a store writing to path. The parent directory is created
// on the first save if missing.
//
// Precondition: path and logger must be non-nil/non-empty.
func New(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the roster from disk. A missing file is an empty roster.
func (s *Store) Load(ctx context.Context) (map[string]*actor.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]*actor.Player{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", s.path, err)
	}

	players := make(map[string]*actor.Player)
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("parsing save file %s: %w", s.path, err)
	}

	s.logger.Info("roster loaded",
		zap.String("path", s.path),
		zap.Int("players", len(players)),
	)
	return players, nil
}

// Save writes the roster snapshot. The write lands in a temp file first
// and replaces the target with a rename.
func (s *Store) Save(ctx context.Context, players map[string]*actor.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp save file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp save file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing save file %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *Store) Close() error { return nil }
