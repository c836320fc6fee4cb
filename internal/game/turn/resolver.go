// Package turn resolves combat rounds: player actions, enemy actions,
// status ticks, and per-turn upkeep. All damage flows through the
// encounter registry so kills resolve no matter which side of a round
// they land in.
package turn

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/encounter"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

// EnchantedDagger procs bonus bleeds on hits and backstab crits.
const EnchantedDagger = "Enchanted Dagger"

// Skill cooldowns per class, in rounds.
const (
	warriorSkillCD = 3
	mageSkillCD    = 2
	rogueSkillCD   = 3
)

// Resolver executes combat actions against an active encounter.
type Resolver struct {
	registry *encounter.Registry
	src      rng.Source
	logger   *zap.Logger
}

// NewResolver creates a turn resolver.
//
// Precondition: registry, src, and logger must be non-nil.
func NewResolver(registry *encounter.Registry, src rng.Source, logger *zap.Logger) *Resolver {
	return &Resolver{registry: registry, src: src, logger: logger}
}

// Attack performs the player's basic attack. Returns the narration; if
// the blow killed the enemy, enc.Spoils carries the victory line.
func (r *Resolver) Attack(enc *encounter.Encounter) string {
	p := enc.Player
	enemy := enc.Enemy

	total := p.TotalDamage()
	critMsg := ""
	if rng.Chance(r.src, float64(p.Mods.CritChance)/100) {
		total = total * 3 / 2
		critMsg = " CRITICAL HIT!"
	}

	if !p.Mods.TrueStrike {
		if dodge := enemy.DodgeChance(); dodge > 0 && r.src.Float64()*100 < float64(dodge) {
			return fmt.Sprintf("Your attack misses! The %s dodges with evasive grace.", enemy.Name)
		}
	}

	effectiveArmor := enemy.EffectiveArmor() - p.Mods.ArmorPierce
	if effectiveArmor < 0 {
		effectiveArmor = 0
	}
	final := total - effectiveArmor
	if final < 1 {
		final = 1
	}
	r.registry.ApplyDamage(&enemy.Participant, final, "attack")

	var hitEffects []string
	if p.HasItem(EnchantedDagger) && enemy.Kind == actor.KindMob && rng.Chance(r.src, 0.15) {
		enemy.AddStatus("bleed", 2)
		hitEffects = append(hitEffects, "bleeding applied")
	}
	if p.Mods.LifeSteal > 0 {
		steal := minInt(p.Mods.LifeSteal, final, p.MaxHP-p.HP)
		if steal > 0 {
			p.HP += steal
			hitEffects = append(hitEffects, fmt.Sprintf("stole %d HP", steal))
		}
	}

	msg := fmt.Sprintf("You hit for %d%s.", final, critMsg)
	if len(hitEffects) > 0 {
		msg += fmt.Sprintf(" (%s)", strings.Join(hitEffects, ", "))
	}
	return msg
}

// UseSkill performs the player's class skill and sets its cooldown.
//
// Precondition: the caller has already checked SkillCD.
func (r *Resolver) UseSkill(enc *encounter.Encounter) string {
	p := enc.Player
	switch p.Class {
	case actor.ClassWarrior:
		return r.powerStrike(enc)
	case actor.ClassMage:
		return r.fireBolt(enc)
	case actor.ClassRogue:
		return r.backstab(enc)
	default:
		return "No class selected"
	}
}

// powerStrike lands 65% of the time, pierces armor, and life-steals.
func (r *Resolver) powerStrike(enc *encounter.Encounter) string {
	p := enc.Player
	enemy := enc.Enemy
	p.SkillCD = warriorSkillCD

	if !rng.Chance(r.src, 0.65) {
		return "Power Strike misses!"
	}

	dmg := rng.IntBetween(r.src, 3, 6) + p.Level + p.Mods.SpellPower/10
	effectiveArmor := enemy.Armor - p.Mods.ArmorPierce
	if effectiveArmor < 0 {
		effectiveArmor = 0
	}
	final := dmg - effectiveArmor
	if final < 1 {
		final = 1
	}
	r.registry.ApplyDamage(&enemy.Participant, final, "skill:power_strike")

	msg := fmt.Sprintf("Power Strike pierces for %d!", final)
	if p.Mods.LifeSteal > 0 {
		heal := p.Heal(p.Mods.LifeSteal)
		if heal > 0 {
			msg += fmt.Sprintf(" (Life steal: +%d HP)", heal)
		}
	}
	return msg
}

// fireBolt ignores half the enemy's armor (rounded up) and can ignite.
func (r *Resolver) fireBolt(enc *encounter.Encounter) string {
	p := enc.Player
	enemy := enc.Enemy
	p.SkillCD = mageSkillCD

	spellPower := p.TotalSpellPower()
	raw := 2 + p.Level + p.TotalMagicDamage()

	totalArmor := enemy.EffectiveArmor()
	armorIgnored := (totalArmor + 1) / 2
	effectiveArmor := totalArmor - armorIgnored
	dmg := raw - effectiveArmor
	if dmg < 1 {
		dmg = 1
	}
	r.registry.ApplyDamage(&enemy.Participant, dmg, "skill:fire_bolt")

	var msg string
	if spellPower > 0 {
		msg = fmt.Sprintf("Fire Bolt sears for %d (ignores %d/%d armor, +%d spell power)!",
			dmg, armorIgnored, totalArmor, spellPower)
	} else {
		msg = fmt.Sprintf("Fire Bolt sears for %d (ignores %d/%d armor)!", dmg, armorIgnored, totalArmor)
	}

	burnChance := 0.3 + float64(spellPower)*0.02
	if rng.Chance(r.src, burnChance) {
		burnDuration := 2 + spellPower/3
		enemy.AddStatus("burn", burnDuration)
		msg += fmt.Sprintf(" Target catches fire for %d turns!", burnDuration)
	}
	return msg
}

// backstab crits more often against healthy targets.
func (r *Resolver) backstab(enc *encounter.Encounter) string {
	p := enc.Player
	enemy := enc.Enemy
	p.SkillCD = rogueSkillCD

	base := 1 + p.Level + p.Mods.SpellPower/10
	critChance := 0.3
	if enemy.HP*2 > enemy.MaxHP {
		critChance = 0.6
	}
	critChance += float64(p.Mods.CritChance) / 100

	var dmg int
	var msg string
	if rng.Chance(r.src, critChance) {
		dmg = base + rng.IntBetween(r.src, 3, 5) + p.Mods.DamageBonus
		msg = fmt.Sprintf("Backstab CRITS for %d!", dmg)
		if p.HasItem(EnchantedDagger) {
			enemy.AddStatus("bleed", 3)
			msg += " Target starts bleeding!"
		}
	} else {
		dmg = base + rng.IntBetween(r.src, 0, 2) + p.Mods.DamageBonus
		msg = fmt.Sprintf("Backstab hits for %d.", dmg)
	}
	r.registry.ApplyDamage(&enemy.Participant, dmg, "skill:backstab")
	return msg
}

// AfterRound decays the player's skill cooldown.
func (r *Resolver) AfterRound(p *actor.Player) {
	if p.SkillCD > 0 {
		p.SkillCD--
	}
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
