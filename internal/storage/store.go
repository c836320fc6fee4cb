// Package storage defines the persistence contract for the player
// roster. Memory is authoritative; stores only snapshot and restore it.
package storage

import (
	"context"

	"github.com/kjohnstone/embervale/internal/game/actor"
)

// Store persists and restores the full player roster, keyed by
// channel#username.
type Store interface {
	// Load reads the saved roster. A missing save yields an empty map,
	// not an error.
	Load(ctx context.Context) (map[string]*actor.Player, error)
	// Save writes the full roster snapshot atomically.
	Save(ctx context.Context, players map[string]*actor.Player) error
	// Close releases backend resources.
	Close() error
}
