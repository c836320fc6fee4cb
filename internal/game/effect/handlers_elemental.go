package effect

import (
	"fmt"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

// Elemental direct-damage effects. Out of combat these degrade to
// flavor text; in combat they route through the damage pipeline.

// ElementalDamage adjusts base damage for the enemy's vulnerabilities
// and resistances. A matching vulnerability adds 50%; resistance then
// reduces flat, floored at 1.
func ElementalDamage(enemy *actor.Enemy, element string, base int) int {
	if enemy == nil {
		return base
	}
	dmg := base
	if enemy.VulnerableTo(element) {
		dmg = dmg * 3 / 2
	}
	if resist := enemy.ResistAgainst(element); resist > 0 {
		dmg -= resist
		if dmg < 1 {
			dmg = 1
		}
	}
	return dmg
}

func (e *Engine) effectFireDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return fmt.Sprintf("fire energy courses through you (+%d fire power)", ctx.Magnitude), nil
	}
	spBonus := ctx.Player.TotalSpellPower() / 2
	actual := ElementalDamage(ctx.Enemy, "fire", ctx.Magnitude+spBonus)
	e.damager.ApplyDamage(&ctx.Enemy.Participant, actual, "fire")

	suffix := ""
	if spBonus > 0 {
		suffix = fmt.Sprintf(" (+%d spell power)", spBonus)
	}
	if ctx.Enemy.VulnerableTo("fire") {
		return fmt.Sprintf("fire damage: %d (effective vs %s!)%s", actual, ctx.Enemy.CreatureType, suffix), nil
	}
	return fmt.Sprintf("fire damage: %d%s", actual, suffix), nil
}

func (e *Engine) effectIceDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "frost energy surrounds you", nil
	}
	actual := ElementalDamage(ctx.Enemy, "ice", ctx.Magnitude)
	e.damager.ApplyDamage(&ctx.Enemy.Participant, actual, "ice")
	if rng.Chance(e.src, 0.3) {
		ctx.Enemy.SetStatus("frozen", 1)
	}
	if ctx.Enemy.VulnerableTo("ice") {
		return fmt.Sprintf("frost damage: %d (effective vs %s!)", actual, ctx.Enemy.CreatureType), nil
	}
	return fmt.Sprintf("frost damage: %d", actual), nil
}

func (e *Engine) effectEarthDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "earth energy surrounds you", nil
	}
	actual := ElementalDamage(ctx.Enemy, "earth", ctx.Magnitude)
	e.damager.ApplyDamage(&ctx.Enemy.Participant, actual, "earth")
	if rng.Chance(e.src, 0.3) {
		ctx.Enemy.SetStatus("stunned", 1)
	}
	if ctx.Enemy.VulnerableTo("earth") {
		return fmt.Sprintf("earth damage: %d (effective vs %s!)", actual, ctx.Enemy.CreatureType), nil
	}
	return fmt.Sprintf("earth damage: %d", actual), nil
}

func (e *Engine) effectLightning(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "lightning power builds within you", nil
	}
	e.damager.ApplyDamage(&ctx.Enemy.Participant, ctx.Magnitude, "lightning")
	return fmt.Sprintf("lightning strikes for %d damage", ctx.Magnitude), nil
}

func (e *Engine) effectLightningDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "lightning crackles around you", nil
	}
	e.damager.ApplyDamage(&ctx.Enemy.Participant, ctx.Magnitude, "lightning")
	if rng.Chance(e.src, 0.2) {
		ctx.Enemy.SetStatus("stunned", 1)
	}
	return fmt.Sprintf("lightning damage: %d", ctx.Magnitude), nil
}

func (e *Engine) effectVoidDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "void energy flows through you", nil
	}
	e.damager.ApplyDamage(&ctx.Enemy.Participant, ctx.Magnitude, "void")
	return fmt.Sprintf("void damage: %d (ignores all defense)", ctx.Magnitude), nil
}

func (e *Engine) effectDivineDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "divine power flows through you", nil
	}
	actual := ElementalDamage(ctx.Enemy, "divine", ctx.Magnitude)
	evil := ctx.Enemy.CreatureType == "demon" || ctx.Enemy.CreatureType == "undead"
	if evil {
		actual = actual * 3 / 2
	}
	if ctx.Enemy.Affinity == "darkness" || ctx.Enemy.Affinity == "void" {
		actual = int(float64(actual) * 1.3)
	}
	e.damager.ApplyDamage(&ctx.Enemy.Participant, actual, "divine")

	if ctx.Enemy.VulnerableTo("divine") {
		return fmt.Sprintf("divine wrath: %d (very effective vs %s!)", actual, ctx.Enemy.CreatureType), nil
	}
	if evil {
		return fmt.Sprintf("divine wrath: %d (devastating vs evil!)", actual), nil
	}
	return fmt.Sprintf("divine power: %d", actual), nil
}

// effectMagicDamage is a passive weapon bonus, not direct damage.
func (e *Engine) effectMagicDamage(ctx *Context) (string, error) {
	ctx.Player.Mods.MagicDamageBonus += ctx.Magnitude
	if ctx.Player.Class == actor.ClassMage {
		return fmt.Sprintf("magic damage increased by %d (total magic bonus: %d)",
			ctx.Magnitude, ctx.Player.TotalMagicDamage()), nil
	}
	return fmt.Sprintf("magic damage increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectUndeadDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return fmt.Sprintf("prepared to deal +%d damage to undead", ctx.Magnitude), nil
	}
	if ctx.Enemy.CreatureType == "undead" {
		actual := ctx.Magnitude * 2
		e.damager.ApplyDamage(&ctx.Enemy.Participant, actual, "undead_bane")
		return fmt.Sprintf("UNDEAD SLAYING: %d bonus damage (devastating vs undead!)", actual), nil
	}
	return fmt.Sprintf("weapon glows but has no effect vs %s", ctx.Enemy.CreatureType), nil
}

func (e *Engine) effectLightDamage(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "holy light surrounds you", nil
	}
	spBonus := ctx.Player.TotalSpellPower() / 2
	actual := ElementalDamage(ctx.Enemy, "light", ctx.Magnitude+spBonus)
	dark := ctx.Enemy.Affinity == "darkness" || ctx.Enemy.Affinity == "void"
	if dark {
		actual = int(float64(actual) * 1.3)
	}
	if ctx.Enemy.CreatureType == "undead" {
		actual = int(float64(actual) * 1.3)
	}
	e.damager.ApplyDamage(&ctx.Enemy.Participant, actual, "light")

	suffix := ""
	if spBonus > 0 {
		suffix = fmt.Sprintf(" +%d spell power", spBonus)
	}
	switch {
	case ctx.Enemy.VulnerableTo("light"):
		return fmt.Sprintf("holy light: %d damage (very effective vs %s!%s)", actual, ctx.Enemy.CreatureType, suffix), nil
	case dark:
		return fmt.Sprintf("holy light: %d damage (effective vs darkness!%s)", actual, suffix), nil
	case spBonus > 0:
		return fmt.Sprintf("holy light: %d damage (%s)", actual, suffix[1:]), nil
	default:
		return fmt.Sprintf("holy light: %d damage", actual), nil
	}
}

func (e *Engine) effectStormCall(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "storm clouds gather around you", nil
	}
	dmg := ctx.Magnitude + rng.IntBetween(e.src, 5, 15)
	e.damager.ApplyDamage(&ctx.Enemy.Participant, dmg, "storm")
	return fmt.Sprintf("storm called down for %d damage", dmg), nil
}

func (e *Engine) effectQuantumStrike(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "you exist in quantum superposition", nil
	}
	if ctx.Magnitude <= 0 {
		return "", fmt.Errorf("magnitude must be positive")
	}
	dmg := rng.IntBetween(e.src, ctx.Magnitude, ctx.Magnitude*3)
	realities := rng.IntBetween(e.src, 2, 5)
	e.damager.ApplyDamage(&ctx.Enemy.Participant, dmg, "quantum")
	return fmt.Sprintf("quantum strike across %d realities: %d damage", realities, dmg), nil
}
