package turn

import (
	"fmt"
	"strings"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/encounter"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

// Damage-over-time tick sizes on enemies.
const (
	bleedTick  = 2
	burnTick   = 3
	poisonTick = 2
)

// bossSpecialEvery is the round interval between boss special moves.
const bossSpecialEvery = 3

// EnemyTurn resolves the enemy's half of a round: enrage check, status
// ticks, the attack itself, trait infliction, and the boss special.
// Returns the full narration for the turn.
func (r *Resolver) EnemyTurn(enc *encounter.Encounter) string {
	e := enc.Enemy
	p := enc.Player
	var out []string

	if e.Kind == actor.KindBoss && !e.Enraged && e.HP <= e.MaxHP*3/10 {
		e.Enraged = true
		out = append(out, "It becomes ENRAGED! (+50% attack)")
	}

	statusMsgs, cannotAct := r.tickEnemyStatuses(enc)
	out = append(out, statusMsgs...)
	if e.HP <= 0 {
		// A DoT kill has already been rewarded by the damage pipeline.
		return strings.Join(out, " ")
	}
	if cannotAct {
		return strings.Join(out, " ")
	}

	atk := e.Atk
	if e.Kind == actor.KindBoss && e.Enraged {
		atk = atk * 3 / 2
	}

	if p.Class == actor.ClassRogue && rng.Chance(r.src, 0.20) {
		out = append(out, "You dodge the attack!")
	} else {
		out = append(out, r.enemyHit(enc, atk)...)
		if enc.Resolved {
			return strings.Join(out, " ")
		}
		out = append(out, r.inflictTraits(enc)...)
	}

	if e.Kind == actor.KindBoss {
		e.SpecialCD++
		if e.SpecialCD >= bossSpecialEvery {
			out = append(out, r.bossSpecial(enc))
			e.SpecialCD = 0
			out = append(out, enc.DrainNotes()...)
		}
	}
	return strings.Join(out, " ")
}

// tickEnemyStatuses applies one round of status effects to the enemy.
// The second return reports whether a control effect prevents the enemy
// from acting this round.
func (r *Resolver) tickEnemyStatuses(enc *encounter.Encounter) ([]string, bool) {
	e := enc.Enemy
	var out []string

	if e.Kind == actor.KindMob && e.HasTrait("regen") && e.HP < e.MaxHP {
		e.Heal(1)
		out = append(out, "It regenerates 1 HP.")
	}

	dots := []struct {
		status   string
		damage   int
		expired  string
		narrated string
	}{
		{"bleed", bleedTick, "Bleeding wears off.", "It bleeds for %d damage."},
		{"burn", burnTick, "Burning fades.", "It burns for %d damage."},
		{"poison", poisonTick, "Poison wears off.", "It takes %d poison damage."},
	}
	for _, dot := range dots {
		if e.Status(dot.status) <= 0 {
			continue
		}
		r.registry.ApplyDamage(&e.Participant, dot.damage, dot.status)
		if _, expired := e.TickStatus(dot.status); expired {
			out = append(out, dot.expired)
		}
		out = append(out, fmt.Sprintf(dot.narrated, dot.damage))
	}

	cannotAct := false
	if e.Status("stunned") > 0 {
		if _, expired := e.TickStatus("stunned"); expired {
			out = append(out, "Stun wears off.")
		}
		out = append(out, "It is stunned and cannot act.")
		cannotAct = true
	}
	if e.Status("frozen") > 0 {
		if _, expired := e.TickStatus("frozen"); expired {
			out = append(out, "Frozen state ends.")
		}
		out = append(out, "It is frozen solid.")
		cannotAct = true
	}
	if e.Status("intimidated") > 0 {
		if _, expired := e.TickStatus("intimidated"); expired {
			out = append(out, "It regains its resolve.")
		}
		out = append(out, "It cowers in fear.")
	}
	return out, cannotAct
}

// enemyHit deals the enemy's attack to the player. Intimidating enemies
// sometimes cow the player into taking reduced damage instead.
func (r *Resolver) enemyHit(enc *encounter.Encounter, atk int) []string {
	e := enc.Enemy
	p := enc.Player
	var out []string

	dmg := atk + rng.IntBetween(r.src, 0, 2)

	if e.Intimidating() {
		lvl := float64(e.Level())
		bonus := e.RarityScale()

		chance := (0.20 + lvl*0.015) * bonus
		if chance > 0.5 {
			chance = 0.5
		}
		if rng.Chance(r.src, chance) {
			reduction := (0.25 + lvl*0.01) * bonus
			if reduction > 0.6 {
				reduction = 0.6
			}
			dmg = int(float64(dmg) * (1 - reduction))
			r.registry.ApplyDamage(&p.Participant, dmg, "enemy_intimidating_hit")
			out = append(out, fmt.Sprintf("You're intimidated by the %s %s! Damage reduced to %d.", e.Rarity, e.Name, dmg))
		} else {
			r.registry.ApplyDamage(&p.Participant, dmg, "enemy_hit")
			out = append(out, fmt.Sprintf("The %s hits you for %d with a terrifying roar!", e.Name, dmg))
		}
	} else {
		r.registry.ApplyDamage(&p.Participant, dmg, "enemy_hit")
		out = append(out, fmt.Sprintf("The %s hits you for %d.", e.Name, dmg))
	}

	return append(out, enc.DrainNotes()...)
}

// inflictTraits rolls the enemy's on-hit status effects against the
// player, scaled by enemy level and rarity.
func (r *Resolver) inflictTraits(enc *encounter.Encounter) []string {
	e := enc.Enemy
	p := enc.Player
	lvl := float64(e.Level())
	bonus := e.RarityScale()
	var out []string

	capped := func(chance, cap float64) float64 {
		c := chance * bonus
		if c > cap {
			return cap
		}
		return c
	}

	if e.CanInflict("poison") && rng.Chance(r.src, capped(0.25+lvl*0.01, 0.6)) {
		duration := int((2 + lvl*0.2) * bonus)
		p.AddStatus("poison", duration)
		out = append(out, fmt.Sprintf("You feel %d-potent poison coursing through your veins!", e.Level()))
	}
	if e.CanInflict("burn") && rng.Chance(r.src, capped(0.20+lvl*0.01, 0.5)) {
		duration := int((2 + lvl*0.15) * bonus)
		p.AddStatus("burn", duration)
		out = append(out, fmt.Sprintf("You catch magical fire that burns for %d turns!", duration))
	}
	if e.CanInflict("bleed") && rng.Chance(r.src, capped(0.30+lvl*0.015, 0.65)) {
		duration := int((2 + lvl*0.1) * bonus)
		p.AddStatus("bleed", duration)
		out = append(out, fmt.Sprintf("You're bleeding from %d-turn wounds!", duration))
	}
	return out
}

// bossSpecial executes one of the boss's three special moves.
func (r *Resolver) bossSpecial(enc *encounter.Encounter) string {
	e := enc.Enemy
	p := enc.Player

	switch r.src.Intn(3) {
	case 0: // smash
		dmg := e.Atk + rng.IntBetween(r.src, 2, 5)
		r.registry.ApplyDamage(&p.Participant, dmg, "boss_smash")
		return fmt.Sprintf("The %s unleashes a crushing smash for %d!", e.Name, dmg)
	case 1: // roar
		e.Armor++
		return fmt.Sprintf("The %s roars, its hide hardens (+1 armor).", e.Name)
	default: // guard
		heal := e.Heal(5)
		e.Armor++
		return fmt.Sprintf("The %s guards, recovers %d HP and +1 armor.", e.Name, heal)
	}
}
