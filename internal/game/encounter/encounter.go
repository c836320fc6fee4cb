// Package encounter owns active combats and the damage pipeline. All
// health mutation goes through Registry.ApplyDamage, so a kill from any
// source (attack, skill, item, damage over time) resolves exactly once.
package encounter

import (
	"github.com/kjohnstone/embervale/internal/game/actor"
)

// Encounter is one active combat between a player and an enemy.
//
// Invariant: once Rewarded is set it never clears, so victory rewards
// are granted at most once per encounter regardless of how the kill
// landed.
type Encounter struct {
	ID     string
	Player *actor.Player
	Enemy  *actor.Enemy

	Resolved bool
	Rewarded bool
	// Round counts full player+enemy exchanges, starting at 1.
	Round int
	// Spoils holds the victory narration once rewards are granted, so
	// the command that landed the killing blow can surface it.
	Spoils string
	// Notes are user-facing lines produced inside the damage pipeline,
	// like a resurrection firing mid-turn. Drained by the turn resolver.
	Notes []string
	// Log accumulates resolution notes for diagnostics.
	Log []string
}

// Over reports whether the encounter has been resolved.
func (e *Encounter) Over() bool { return e.Resolved }

// DrainNotes returns and clears the pending user-facing notes.
func (e *Encounter) DrainNotes() []string {
	notes := e.Notes
	e.Notes = nil
	return notes
}

// EnemyDown reports whether the enemy has no health left.
func (e *Encounter) EnemyDown() bool { return e.Enemy.HP <= 0 }
