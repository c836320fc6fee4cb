package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kjohnstone/embervale/internal/game/actor"
)

// PlayerStore persists the roster as one JSONB snapshot row per player,
// keyed by channel#username. The whole roster is written in a single
// transaction so a partial save never mixes two snapshots.
type PlayerStore struct {
	pool *Pool
}

// NewPlayerStore creates a PlayerStore backed by the given pool.
//
// Precondition: pool must be connected.
func NewPlayerStore(pool *Pool) *PlayerStore {
	return &PlayerStore{pool: pool}
}

func (s *PlayerStore) db() *pgxpool.Pool { return s.pool.DB() }

// Load reads every saved player snapshot.
func (s *PlayerStore) Load(ctx context.Context) (map[string]*actor.Player, error) {
	rows, err := s.db().Query(ctx, `SELECT key, data FROM players`)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*actor.Player)
	for rows.Next() {
		var key string
		var data []byte
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("scanning player row: %w", err)
		}
		var p actor.Player
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding player %s: %w", key, err)
		}
		out[key] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating player rows: %w", err)
	}
	return out, nil
}

// Save replaces the stored roster with the given snapshot.
func (s *PlayerStore) Save(ctx context.Context, players map[string]*actor.Player) error {
	tx, err := s.db().BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	keys := make([]string, 0, len(players))
	for key := range players {
		keys = append(keys, key)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM players WHERE NOT (key = ANY($1))`, keys); err != nil {
		return fmt.Errorf("pruning removed players: %w", err)
	}

	for key, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding player %s: %w", key, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO players (key, data, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
			key, data)
		if err != nil {
			return fmt.Errorf("upserting player %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// Close releases the underlying pool.
func (s *PlayerStore) Close() error {
	s.pool.Close()
	return nil
}
