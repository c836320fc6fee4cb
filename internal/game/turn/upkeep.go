package turn

import (
	"fmt"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/encounter"
)

// TurnStart applies the player's start-of-turn effects: regeneration,
// mana regeneration, gear drains, temporary-effect countdowns, status
// damage, and the summoned ally's strike.
func (r *Resolver) TurnStart(enc *encounter.Encounter) []string {
	p := enc.Player
	m := &p.Mods
	var out []string

	if m.InfiniteRegen {
		if p.HP < p.MaxHP {
			p.HP = p.MaxHP
			out = append(out, "INFINITE REGEN: Fully healed")
		}
	} else if m.Regen > 0 {
		if heal := p.Heal(m.Regen); heal > 0 {
			out = append(out, fmt.Sprintf("Regenerated %d HP", heal))
		}
	}

	if m.ManaRegen > 0 && m.Mana < m.MaxMana {
		gain := m.ManaRegen
		if m.Mana+gain > m.MaxMana {
			gain = m.MaxMana - m.Mana
		}
		if gain > 0 {
			m.Mana += gain
			out = append(out, fmt.Sprintf("Regenerated %d mana", gain))
		}
	}

	// Gear drains never finish the player off; they stop at 1 HP.
	if m.HPDrainPerTurn > 0 {
		drain := m.HPDrainPerTurn
		if drain > p.HP-1 {
			drain = p.HP - 1
		}
		if drain > 0 {
			p.HP -= drain
			out = append(out, fmt.Sprintf("Lost %d HP to dark power", drain))
		}
	}

	if m.TempDamageTurns > 0 {
		m.TempDamageTurns--
		if m.TempDamageTurns <= 0 {
			m.TempDamageBuff = 0
			out = append(out, "Damage buff expired")
		}
	}
	if m.TempArmorDebuffTurns > 0 {
		m.TempArmorDebuffTurns--
		if m.TempArmorDebuffTurns <= 0 {
			m.TempArmorDebuff = 0
			out = append(out, "Armor penalty expired")
		}
	}
	if m.StealthTurns > 0 {
		m.StealthTurns--
		if m.StealthTurns <= 0 {
			out = append(out, "Stealth wears off")
		}
	}
	if m.ImmortalTurns > 0 {
		m.ImmortalTurns--
		if m.ImmortalTurns <= 0 {
			out = append(out, "Immortality expires")
		}
	}

	out = append(out, r.tickPlayerStatuses(enc)...)
	if enc.Resolved {
		return out
	}

	if ally := m.SummonedAlly; ally != nil {
		r.registry.ApplyDamage(&enc.Enemy.Participant, ally.Damage, "ally")
		out = append(out, fmt.Sprintf("Spirit ally attacks for %d damage", ally.Damage))
		ally.HP--
		if ally.HP <= 0 {
			m.SummonedAlly = nil
			out = append(out, "Spirit ally fades away")
		}
	}
	return out
}

// tickPlayerStatuses applies one round of damage-over-time statuses the
// enemy has inflicted on the player. Damage routes through the pipeline
// so death prevention and defeat resolution apply.
func (r *Resolver) tickPlayerStatuses(enc *encounter.Encounter) []string {
	p := enc.Player
	var out []string

	dots := []struct {
		status   string
		damage   int
		narrated string
		expired  string
	}{
		{"bleed", bleedTick, "You bleed for %d damage.", "Your bleeding stops."},
		{"burn", burnTick, "You burn for %d damage.", "Your burns cool."},
		{"poison", poisonTick, "You take %d poison damage.", "The poison wears off."},
	}
	for _, dot := range dots {
		if p.Status(dot.status) <= 0 {
			continue
		}
		r.registry.ApplyDamage(&p.Participant, dot.damage, dot.status)
		out = append(out, fmt.Sprintf(dot.narrated, dot.damage))
		if _, expired := p.TickStatus(dot.status); expired {
			out = append(out, dot.expired)
		}
		out = append(out, enc.DrainNotes()...)
		if enc.Resolved {
			break
		}
	}
	return out
}

// ExtraTurnReady consumes one banked extra turn, reporting whether the
// player gets to act again this round.
func ExtraTurnReady(p *actor.Player) bool {
	if p.Mods.ExtraTurns <= 0 {
		return false
	}
	p.Mods.ExtraTurns--
	return true
}
