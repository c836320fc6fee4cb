package effect

import (
	"fmt"

	"github.com/kjohnstone/embervale/internal/game/actor"
)

// Utility, magic economy, and summon effects.

func (e *Engine) effectStealth(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	turns := ctx.durationOr(ctx.Magnitude)
	m.StealthTurns = maxInt(m.StealthTurns, turns)
	return fmt.Sprintf("stealthed for %d turns", turns), nil
}

func (e *Engine) effectStealthBonus(ctx *Context) (string, error) {
	ctx.Player.Mods.StealthBonus += ctx.Magnitude
	return fmt.Sprintf("stealth effectiveness increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectSpeedBuff(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	turns := ctx.durationOr(5)
	m.SpeedBuff = maxInt(m.SpeedBuff, ctx.Magnitude)
	m.SpeedTurns = maxInt(m.SpeedTurns, turns)
	return fmt.Sprintf("speed increased by %d for %d turns", ctx.Magnitude, turns), nil
}

func (e *Engine) effectEscapeChance(ctx *Context) (string, error) {
	ctx.Player.Mods.EscapeBonus += ctx.Magnitude
	return fmt.Sprintf("escape chance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectNightVision(ctx *Context) (string, error) {
	ctx.Player.Mods.NightVision = true
	return "gained night vision", nil
}

func (e *Engine) effectGrip(ctx *Context) (string, error) {
	ctx.Player.Mods.GripStrength += ctx.Magnitude
	return fmt.Sprintf("grip strength increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectManaRegen(ctx *Context) (string, error) {
	ctx.Player.Mods.ManaRegen += ctx.Magnitude
	return fmt.Sprintf("mana regeneration increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectSpellPower(ctx *Context) (string, error) {
	ctx.Player.Mods.SpellPower += ctx.Magnitude
	if ctx.Player.Class == actor.ClassMage {
		return fmt.Sprintf("spell power increased by %d (total spell power: %d)",
			ctx.Magnitude, ctx.Player.TotalSpellPower()), nil
	}
	return fmt.Sprintf("spell power increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectExtraTurn(ctx *Context) (string, error) {
	ctx.Player.Mods.ExtraTurns += ctx.Magnitude
	return fmt.Sprintf("gained %d extra turn(s)", ctx.Magnitude), nil
}

func (e *Engine) effectHealOnKill(ctx *Context) (string, error) {
	ctx.Player.Mods.HealOnKill += ctx.Magnitude
	return fmt.Sprintf("heal %d HP on each kill", ctx.Magnitude), nil
}

func (e *Engine) effectSummonAlly(ctx *Context) (string, error) {
	p := ctx.Player
	p.Mods.SummonedAlly = &actor.Ally{
		HP:     10 + p.Level*2,
		Damage: 3 + p.Level,
	}
	return "summoned a spirit ally", nil
}
