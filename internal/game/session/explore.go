package session

import (
	"fmt"

	"github.com/kjohnstone/embervale/internal/event"
	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/drop"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

// Exploration outcome thresholds. One roll decides between an ambush,
// gold, or an item; bosses get their own up-front chance.
const (
	exploreMobChance  = 0.18
	exploreGoldCutoff = 0.6
	exploreXP         = 2
)

// Explore rolls a random exploration outcome in the player's location:
// a boss ambush, a mob ambush, gold, or an item.
func (m *Manager) Explore(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if p.Class == actor.ClassNone {
		return "pick a class with %class warrior|mage|rogue. Use %classes for details."
	}
	if msg, proceed := m.registry.ExploreGuard(p, ""); !proceed {
		return msg
	} else if msg != "" {
		m.persist()
		return msg
	}

	if rng.Chance(m.src, m.cfg.BossEncounterRate) {
		msg := m.spawnBoss(p)
		m.persist()
		return msg
	}

	roll := m.src.Float64()
	switch {
	case roll < exploreMobChance:
		msg := m.spawnMob(p)
		m.persist()
		return msg

	case roll < exploreGoldCutoff:
		gold := rng.IntBetween(m.src, 1, 5)
		p.Gold += gold
		xpMsg := m.grantXP(p, exploreXP)
		m.persist()
		return fmt.Sprintf("You found %d gold. %s", gold, xpMsg)

	default:
		if item := m.drops.Roll(drop.SourceExploration, p.Level, nil); item != nil {
			p.AddItem(item.Name)
			m.emitter.Emit(event.Event{
				Type:    event.TypeDrop,
				Channel: p.Channel,
				Player:  p.Name,
				Message: "found " + item.Name,
				Item:    item.Name,
				Rarity:  string(item.Rarity),
			})
			xpMsg := m.grantXP(p, exploreXP)
			m.persist()
			return fmt.Sprintf("You picked up a %s. %s", item.Name, xpMsg)
		}
		gold := rng.IntBetween(m.src, 1, 3)
		p.Gold += gold
		xpMsg := m.grantXP(p, exploreXP)
		m.persist()
		return fmt.Sprintf("You found %d gold. %s", gold, xpMsg)
	}
}

// Hunt forces a mob encounter in the current location.
func (m *Manager) Hunt(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if p.Class == actor.ClassNone {
		return "pick a class with %class warrior|mage|rogue. Use %classes for details."
	}
	if enc := m.registry.ForPlayer(p.Key()); enc != nil {
		if msg, down := m.registry.RunGuard(p, ""); down {
			m.persist()
			return msg
		}
		return "already in combat."
	}

	msg := m.spawnMob(p)
	m.persist()
	return msg
}

// Travel moves the player to a new random location for a little XP.
func (m *Manager) Travel(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if msg, proceed := m.registry.ExploreGuard(p, ""); !proceed {
		return msg
	} else if msg != "" {
		m.persist()
		return msg
	}

	var choices []string
	for _, loc := range m.catalog.Locations() {
		if loc != p.Location {
			choices = append(choices, loc)
		}
	}
	if len(choices) == 0 {
		return "there is nowhere else to go."
	}

	from := p.Location
	p.Location = choices[m.src.Intn(len(choices))]
	xpMsg := m.grantXP(p, 1+p.Level/3)
	m.persist()
	return fmt.Sprintf("You travel from %s to %s. New area discovered! %s", from, p.Location, xpMsg)
}

// grantXP awards XP and announces any level-up on the event bus.
func (m *Manager) grantXP(p *actor.Player, xp int) string {
	msg, levels := p.GrantXP(xp)
	if levels > 0 {
		m.emitter.Emit(event.Event{
			Type:    event.TypeLevelUp,
			Channel: p.Channel,
			Player:  p.Name,
			Message: msg,
			XP:      xp,
		})
	}
	return msg
}
