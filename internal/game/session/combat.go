package session

import (
	"fmt"
	"strings"

	"github.com/kjohnstone/embervale/internal/event"
	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/encounter"
	"github.com/kjohnstone/embervale/internal/game/rng"
	"github.com/kjohnstone/embervale/internal/game/turn"
)

// Fight executes one basic-attack combat round.
func (m *Manager) Fight(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if p.Class == actor.ClassNone {
		return "pick a class with %class warrior|mage|rogue. Use %classes for details."
	}
	enc := m.registry.ForPlayer(p.Key())
	if enc == nil {
		return "no active combat. Use %explore or %hunt."
	}
	if msg, down := m.registry.RunGuard(p, "foe down!"); down {
		m.persist()
		return msg
	}
	return m.resolveRound(p, enc, m.resolver.Attack)
}

// Skill executes one combat round using the player's class skill.
func (m *Manager) Skill(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if p.Class == actor.ClassNone {
		return "pick a class with %class warrior|mage|rogue. Use %classes for details."
	}
	enc := m.registry.ForPlayer(p.Key())
	if enc == nil {
		return "no active combat. Use %explore or %hunt."
	}
	if p.SkillCD > 0 {
		return fmt.Sprintf("skill on cooldown: %d turn(s).", p.SkillCD)
	}
	if msg, down := m.registry.RunGuard(p, "the enemy is already down."); down {
		m.persist()
		return msg
	}
	return m.resolveRound(p, enc, m.resolver.UseSkill)
}

// Run attempts to flee the current fight. Fleeing forfeits any reward;
// a failed attempt gives the enemy a free action.
func (m *Manager) Run(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	enc := m.registry.ForPlayer(p.Key())
	if enc == nil {
		return "no active combat. Use %explore or %hunt."
	}
	if msg, down := m.registry.RunGuard(p, ""); down {
		m.persist()
		return msg
	}

	chance := m.cfg.RunSuccessMob
	if enc.Enemy.Kind == actor.KindBoss {
		chance = m.cfg.RunSuccessBoss
	}
	if p.Class == actor.ClassRogue {
		chance += m.cfg.RogueRunBonus
	}

	if rng.Chance(m.src, chance) {
		m.registry.Abandon(p)
		p.ClearAllStatuses()
		m.emitter.Emit(event.Event{
			Type:    event.TypeFlee,
			Channel: p.Channel,
			Player:  p.Name,
			Message: "escaped from " + enc.Enemy.Name,
		})
		m.persist()
		return "You escape. You retreat to safety."
	}

	enemyAction := m.resolver.EnemyTurn(enc)
	if enc.Resolved {
		if enc.Rewarded {
			m.persist()
			return joinNonEmpty(enemyAction, enc.Spoils)
		}
		return m.defeat(p, "Failed to run.", enemyAction)
	}

	enc.Round++
	m.resolver.AfterRound(p)
	m.persist()
	return fmt.Sprintf("Couldn't escape. %s (Foe %d/%d | You %d/%d)",
		enemyAction, enc.Enemy.HP, enc.Enemy.MaxHP, p.HP, p.MaxHP)
}

// resolveRound runs a full combat round: upkeep, the player's action,
// then the enemy's response, persisting the outcome.
func (m *Manager) resolveRound(p *actor.Player, enc *encounter.Encounter,
	act func(*encounter.Encounter) string) string {

	upkeep := strings.Join(m.resolver.TurnStart(enc), " ")
	if enc.Resolved {
		if enc.Rewarded {
			m.persist()
			return joinNonEmpty(upkeep, enc.Spoils)
		}
		return m.defeat(p, upkeep, "")
	}

	playerAction := act(enc)
	if enc.EnemyDown() {
		m.resolver.AfterRound(p)
		m.persist()
		return joinNonEmpty(upkeep, playerAction, enc.Spoils)
	}

	if turn.ExtraTurnReady(p) {
		m.resolver.AfterRound(p)
		m.persist()
		return fmt.Sprintf("%s Extra turn! The %s hesitates. (Foe %d/%d | You %d/%d)",
			joinNonEmpty(upkeep, playerAction), enc.Enemy.Name,
			enc.Enemy.HP, enc.Enemy.MaxHP, p.HP, p.MaxHP)
	}

	enemyAction := m.resolver.EnemyTurn(enc)
	if enc.Resolved {
		if enc.Rewarded {
			m.persist()
			return joinNonEmpty(upkeep, playerAction, enemyAction, enc.Spoils)
		}
		return m.defeat(p, joinNonEmpty(upkeep, playerAction), enemyAction)
	}

	enc.Round++
	m.resolver.AfterRound(p)
	m.persist()
	return fmt.Sprintf("%s %s (Foe %d/%d | You %d/%d)",
		joinNonEmpty(upkeep, playerAction), enemyAction,
		enc.Enemy.HP, enc.Enemy.MaxHP, p.HP, p.MaxHP)
}

// defeat applies the loss outcome. Hardcore deletes the character; the
// normal mode taxes gold and relocates the player at 1 HP.
func (m *Manager) defeat(p *actor.Player, playerAction, enemyAction string) string {
	if m.cfg.Hardcore {
		m.Remove(p.Key())
		m.emitter.Emit(event.Event{
			Type:    event.TypeDefeat,
			Channel: p.Channel,
			Player:  p.Name,
			Message: "perished",
		})
		m.persist()
		return "You have PERISHED! Your character is lost forever. Use %start to create a new character."
	}

	goldLoss := 0
	if p.Gold > 0 {
		// 20% of gold, rounded up.
		goldLoss = (p.Gold + 4) / 5
	}
	p.Gold -= goldLoss
	if p.Gold < 0 {
		p.Gold = 0
	}
	p.HP = 1
	p.ClearAllStatuses()

	locations := m.catalog.Locations()
	p.Location = locations[m.src.Intn(len(locations))]

	m.emitter.Emit(event.Event{
		Type:    event.TypeDefeat,
		Channel: p.Channel,
		Player:  p.Name,
		Message: "defeated",
		Gold:    goldLoss,
	})
	m.persist()
	return fmt.Sprintf("%s You were defeated. Lost %dg (20%% penalty).You wake up in an unknown location.",
		joinNonEmpty(playerAction, enemyAction), goldLoss)
}

// joinNonEmpty joins the non-empty parts with single spaces.
func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, s := range parts {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
