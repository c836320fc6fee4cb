package effect

import "fmt"

// Resistances and defensive layers.

func (e *Engine) effectFireResist(ctx *Context) (string, error) {
	ctx.Player.Mods.FireResist += ctx.Magnitude
	return fmt.Sprintf("fire resistance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectColdResist(ctx *Context) (string, error) {
	ctx.Player.Mods.ColdResist += ctx.Magnitude
	return fmt.Sprintf("cold resistance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectMagicResist(ctx *Context) (string, error) {
	ctx.Player.Mods.MagicResist += ctx.Magnitude
	return fmt.Sprintf("magic resistance increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectAllResist(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	m.FireResist += ctx.Magnitude
	m.ColdResist += ctx.Magnitude
	m.MagicResist += ctx.Magnitude
	return fmt.Sprintf("all resistances increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectVoidProtection(ctx *Context) (string, error) {
	ctx.Player.Mods.VoidResist += ctx.Magnitude
	return fmt.Sprintf("void resistances increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectDivineShield(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	m.DivineShield = maxInt(m.DivineShield, ctx.Magnitude)
	return fmt.Sprintf("divine shield absorbs %d damage", ctx.Magnitude), nil
}

func (e *Engine) effectEnergyAbsorb(ctx *Context) (string, error) {
	ctx.Player.Mods.EnergyAbsorb += ctx.Magnitude
	return fmt.Sprintf("energy absorption increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectReflect(ctx *Context) (string, error) {
	ctx.Player.Mods.ReflectChance += ctx.Magnitude
	return fmt.Sprintf("magic reflection increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectPhaseShift(ctx *Context) (string, error) {
	ctx.Player.Mods.PhaseShiftChance += ctx.Magnitude
	return fmt.Sprintf("phase shift chance increased by %d%%", ctx.Magnitude), nil
}
