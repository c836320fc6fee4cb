package session

import (
	"fmt"
	"strings"

	"github.com/kjohnstone/embervale/internal/game/actor"
)

// Use consumes an item from the bag. In combat, offensive effects
// target the current enemy; a kill through an item resolves the fight.
func (m *Manager) Use(channel, username, query string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if strings.TrimSpace(query) == "" {
		return "usage: %use <item name>"
	}

	var enemy *actor.Enemy
	enc := m.registry.ForPlayer(p.Key())
	if enc != nil {
		enemy = enc.Enemy
	}

	msg, used := m.bag.Use(p, query, enemy)
	if !used {
		return msg
	}
	if enc != nil && enc.Resolved && enc.Rewarded {
		msg = joinNonEmpty(msg, enc.Spoils)
	}
	m.persist()
	return msg
}

// Equip moves a bag item into its equipment slot.
func (m *Manager) Equip(channel, username, query string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if strings.TrimSpace(query) == "" {
		return "usage: %equip <item_name> (e.g., %equip Cloak of Shadows)"
	}

	msg, equipped := m.bag.Equip(p, query)
	if equipped {
		m.persist()
	}
	return msg
}

// Unequip returns gear to the bag by slot or item name.
func (m *Manager) Unequip(channel, username, query string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}

	msg, removed := m.bag.Unequip(p, query)
	if removed {
		m.persist()
	}
	return msg
}

// Bag formats the player's inventory.
func (m *Manager) Bag(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	return "Bag: " + m.bag.Display(p)
}

// Classes describes the selectable classes.
func (m *Manager) Classes() string {
	order := []actor.Class{actor.ClassWarrior, actor.ClassMage, actor.ClassRogue}
	parts := make([]string, 0, len(order))
	for _, class := range order {
		info := classes[class]
		parts = append(parts, fmt.Sprintf("%s: Passive %s, Skill %s", class, info.Passive, info.SkillName))
	}
	return strings.Join(parts, " | ")
}
