// Package actor defines the combat participants: the shared Participant
// shape plus the Player and Enemy types built on it. Health is only
// mutated through the encounter registry's damage pipeline; the helpers
// here never resolve deaths themselves.
package actor

// Participant is the shared combat shape embedded by Player and Enemy.
//
// Invariant: HP stays within [0, MaxHP].
type Participant struct {
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	// Statuses maps status name to remaining turns. A missing key means
	// the status is not active.
	Statuses map[string]int `json:"statuses,omitempty"`
	// EncounterID identifies the encounter this participant is bound to,
	// empty when out of combat. The encounter registry owns the actual
	// encounter objects.
	EncounterID string `json:"encounter_id,omitempty"`
}

// Alive reports whether the participant has health remaining.
func (p *Participant) Alive() bool { return p.HP > 0 }

// InEncounter reports whether the participant is bound to an encounter.
func (p *Participant) InEncounter() bool { return p.EncounterID != "" }

// Status returns the remaining turns of the named status, 0 if inactive.
func (p *Participant) Status(name string) int {
	return p.Statuses[name]
}

// AddStatus extends the named status by turns, creating it if absent.
//
// Precondition: turns > 0; calls with turns <= 0 are ignored.
func (p *Participant) AddStatus(name string, turns int) {
	if turns <= 0 {
		return
	}
	if p.Statuses == nil {
		p.Statuses = make(map[string]int)
	}
	p.Statuses[name] += turns
}

// SetStatus sets the named status to exactly turns, removing it when
// turns <= 0.
func (p *Participant) SetStatus(name string, turns int) {
	if turns <= 0 {
		delete(p.Statuses, name)
		return
	}
	if p.Statuses == nil {
		p.Statuses = make(map[string]int)
	}
	p.Statuses[name] = turns
}

// ClearStatus removes the named status. Returns true if it was active.
func (p *Participant) ClearStatus(name string) bool {
	if _, ok := p.Statuses[name]; !ok {
		return false
	}
	delete(p.Statuses, name)
	return true
}

// ClearAllStatuses removes every status and returns how many were active.
func (p *Participant) ClearAllStatuses() int {
	n := len(p.Statuses)
	p.Statuses = nil
	return n
}

// TickStatus decrements the named status by one turn and removes it at
// zero. Returns the remaining turns and whether it just expired.
func (p *Participant) TickStatus(name string) (remaining int, expired bool) {
	turns, ok := p.Statuses[name]
	if !ok {
		return 0, false
	}
	turns--
	if turns <= 0 {
		delete(p.Statuses, name)
		return 0, true
	}
	p.Statuses[name] = turns
	return turns, false
}

// Heal restores up to amount HP, clamped at MaxHP, and returns the
// amount actually restored.
//
// Precondition: amount >= 0.
func (p *Participant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	healed := amount
	if p.HP+healed > p.MaxHP {
		healed = p.MaxHP - p.HP
	}
	p.HP += healed
	return healed
}
