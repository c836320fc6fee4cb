package effect

import "fmt"

// Basic stat effects and permanent combat modifiers. These write
// directly into the player's modifier block and narrate the change.

func (e *Engine) effectHeal(ctx *Context) (string, error) {
	healed := ctx.Player.Heal(ctx.Magnitude)
	if healed > 0 {
		return fmt.Sprintf("healed %d HP", healed), nil
	}
	return "already at full health", nil
}

func (e *Engine) effectDamage(ctx *Context) (string, error) {
	ctx.Player.Mods.DamageBonus += ctx.Magnitude
	return fmt.Sprintf("damage increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectArmor(ctx *Context) (string, error) {
	ctx.Player.Mods.ArmorBonus += ctx.Magnitude
	return fmt.Sprintf("armor increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectMana(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	m.Mana += ctx.Magnitude
	if m.Mana > m.MaxMana {
		m.Mana = m.MaxMana
	}
	return fmt.Sprintf("restored %d mana", ctx.Magnitude), nil
}

func (e *Engine) effectMaxHPBonus(ctx *Context) (string, error) {
	ctx.Player.MaxHP += ctx.Magnitude
	ctx.Player.HP += ctx.Magnitude
	return fmt.Sprintf("max HP increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectDamageBuff(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	turns := ctx.durationOr(5)
	m.TempDamageBuff = maxInt(m.TempDamageBuff, ctx.Magnitude)
	m.TempDamageTurns = maxInt(m.TempDamageTurns, turns)
	return fmt.Sprintf("damage boosted by %d for %d turns", ctx.Magnitude, turns), nil
}

// effectArmorDebuff weakens the player's own armor. Carried by cursed
// consumables.
func (e *Engine) effectArmorDebuff(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	turns := ctx.durationOr(5)
	m.TempArmorDebuff = maxInt(m.TempArmorDebuff, ctx.Magnitude)
	m.TempArmorDebuffTurns = maxInt(m.TempArmorDebuffTurns, turns)
	return fmt.Sprintf("armor reduced by %d for %d turns", ctx.Magnitude, turns), nil
}

func (e *Engine) effectDodge(ctx *Context) (string, error) {
	ctx.Player.Mods.DodgeBonus += ctx.Magnitude
	return fmt.Sprintf("dodge chance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectCritChance(ctx *Context) (string, error) {
	ctx.Player.Mods.CritChance += ctx.Magnitude
	return fmt.Sprintf("critical hit chance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectBlockChance(ctx *Context) (string, error) {
	ctx.Player.Mods.BlockChance += ctx.Magnitude
	return fmt.Sprintf("block chance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectLifeSteal(ctx *Context) (string, error) {
	ctx.Player.Mods.LifeSteal += ctx.Magnitude
	return fmt.Sprintf("life steal increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectPierce(ctx *Context) (string, error) {
	ctx.Player.Mods.Pierce += ctx.Magnitude
	return "attacks now pierce armor", nil
}

func (e *Engine) effectArmorPierce(ctx *Context) (string, error) {
	ctx.Player.Mods.ArmorPierce += ctx.Magnitude
	return fmt.Sprintf("armor piercing increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectTrueStrike(ctx *Context) (string, error) {
	ctx.Player.Mods.TrueStrike = true
	return "attacks now strike true and never miss", nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
