package effect

import "fmt"

// Damage-over-time and control statuses. DOT effects stack duration on
// the enemy; the per-turn damage values are owned by the turn resolver.

func (e *Engine) effectBleed(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "no target for bleeding", nil
	}
	turns := ctx.durationOr(3)
	ctx.Enemy.AddStatus("bleed", turns)
	return fmt.Sprintf("enemy bleeding for %d damage over %d turns", ctx.Magnitude, turns), nil
}

func (e *Engine) effectBurn(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "flames surround you harmlessly", nil
	}
	turns := ctx.durationOr(3)
	ctx.Enemy.AddStatus("burn", turns)
	return fmt.Sprintf("enemy burning for %d damage over %d turns", ctx.Magnitude, turns), nil
}

func (e *Engine) effectPoison(ctx *Context) (string, error) {
	if ctx.Enemy == nil {
		return "you build poison immunity", nil
	}
	turns := ctx.durationOr(3)
	ctx.Enemy.AddStatus("poison", turns)
	return fmt.Sprintf("enemy poisoned for %d damage over %d turns", ctx.Magnitude, turns), nil
}

func (e *Engine) effectRegen(ctx *Context) (string, error) {
	ctx.Player.Mods.Regen += ctx.Magnitude
	return fmt.Sprintf("regeneration increased by %d HP per turn", ctx.Magnitude), nil
}

func (e *Engine) effectStunChance(ctx *Context) (string, error) {
	ctx.Player.Mods.StunChance += ctx.Magnitude
	return fmt.Sprintf("stun chance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectIntimidate(ctx *Context) (string, error) {
	turns := ctx.durationOr(3)
	if ctx.Enemy == nil {
		return "you look more intimidating", nil
	}
	ctx.Enemy.SetStatus("intimidated", turns)
	return fmt.Sprintf("enemy intimidated for %d turns", turns), nil
}

func (e *Engine) effectCurePoison(ctx *Context) (string, error) {
	if ctx.Player.Status("poison") > 0 {
		ctx.Player.ClearStatus("poison")
		return "poison cured", nil
	}
	return "no poison to cure", nil
}

func (e *Engine) effectCureAll(ctx *Context) (string, error) {
	count := ctx.Player.ClearAllStatuses()
	return fmt.Sprintf("all %d status effects cured", count), nil
}

func (e *Engine) effectRemoveCurse(ctx *Context) (string, error) {
	if ctx.Player.Status("cursed") > 0 {
		ctx.Player.ClearStatus("cursed")
		return "curse removed", nil
	}
	return "no curse to remove", nil
}
