// Package event carries game announcements from the combat core to
// outbound surfaces (chat broadcast, logs). Producers never block on
// slow consumers; a full subscriber loses events rather than stalling
// combat resolution.
package event

import "time"

// Type classifies a game event.
type Type string

const (
	TypeSpawn   Type = "spawn"
	TypeVictory Type = "victory"
	TypeDefeat  Type = "defeat"
	TypeFlee    Type = "flee"
	TypeDrop    Type = "drop"
	TypeLevelUp Type = "level_up"
)

// Event is one game announcement.
type Event struct {
	Type    Type      `json:"type"`
	Channel string    `json:"channel"`
	Player  string    `json:"player,omitempty"`
	Message string    `json:"message"`
	Item    string    `json:"item,omitempty"`
	Rarity  string    `json:"rarity,omitempty"`
	Gold    int       `json:"gold,omitempty"`
	XP      int       `json:"xp,omitempty"`
	At      time.Time `json:"at"`
}

// Emitter publishes events. Implementations must not block the caller.
type Emitter interface {
	Emit(ev Event)
}

// Nop discards every event. Useful for tests and tooling.
type Nop struct{}

// Emit discards ev.
func (Nop) Emit(Event) {}
