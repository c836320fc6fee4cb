package effect

import "fmt"

// Legendary and mythic effects. Most set permanent flags whose combat
// meaning lives in the player's stat accessors and the death pipeline;
// the rest are narrative powers that persist on the character sheet.

func (e *Engine) effectResurrect(ctx *Context) (string, error) {
	if ctx.Magnitude <= 0 {
		return "", fmt.Errorf("magnitude must be positive")
	}
	ctx.Player.Mods.ResurrectCharges += ctx.Magnitude
	return fmt.Sprintf("gained %d resurrection charge(s)", ctx.Magnitude), nil
}

func (e *Engine) effectImmortality(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	m.ImmortalTurns = maxInt(m.ImmortalTurns, ctx.Magnitude)
	return fmt.Sprintf("gained immortality for %d turns", ctx.Magnitude), nil
}

func (e *Engine) effectTrueImmortality(ctx *Context) (string, error) {
	ctx.Player.Mods.TrueImmortal = true
	return "gained TRUE IMMORTALITY - death is impossible", nil
}

func (e *Engine) effectInfiniteRegen(ctx *Context) (string, error) {
	ctx.Player.Mods.InfiniteRegen = true
	return "gained INFINITE REGENERATION", nil
}

func (e *Engine) effectAscend(ctx *Context) (string, error) {
	p := ctx.Player
	p.Mods.Ascended = true
	p.MaxHP += 1000
	p.HP = p.MaxHP
	return "ASCENDED TO GODHOOD - all stats massively increased", nil
}

func (e *Engine) effectDivinePower(ctx *Context) (string, error) {
	ctx.Player.Mods.DivinePower += ctx.Magnitude
	return fmt.Sprintf("divine power increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectCosmicPower(ctx *Context) (string, error) {
	ctx.Player.Mods.CosmicPower = true
	return "gained COSMIC POWER - control over universal forces", nil
}

func (e *Engine) effectOmnipotence(ctx *Context) (string, error) {
	ctx.Player.Mods.Omnipotent = true
	return "achieved OMNIPOTENCE - unlimited power over reality", nil
}

func (e *Engine) effectRealityControl(ctx *Context) (string, error) {
	ctx.Player.Mods.RealityControl = true
	return "gained control over REALITY itself", nil
}

func (e *Engine) effectTimeControl(ctx *Context) (string, error) {
	ctx.Player.Mods.TimeControl = true
	return "gained control over TIME", nil
}

func (e *Engine) effectTimeMastery(ctx *Context) (string, error) {
	ctx.Player.Mods.TimeMaster = true
	return "achieved TIME MASTERY - complete temporal control", nil
}

func (e *Engine) effectStarControl(ctx *Context) (string, error) {
	ctx.Player.Mods.StarControl = true
	return "gained control over STARS and celestial bodies", nil
}

func (e *Engine) effectMultiverseControl(ctx *Context) (string, error) {
	ctx.Player.Mods.MultiverseControl = true
	return "gained control over the MULTIVERSE", nil
}

func (e *Engine) effectProbabilityControl(ctx *Context) (string, error) {
	ctx.Player.Mods.LuckBonus += ctx.Magnitude
	return fmt.Sprintf("probability manipulation increased by %d%%", ctx.Magnitude), nil
}

func (e *Engine) effectCreateWorld(ctx *Context) (string, error) {
	ctx.Player.Mods.WorldsCreated += ctx.Magnitude
	return fmt.Sprintf("gained power to CREATE %d WORLD(S)", ctx.Magnitude), nil
}

func (e *Engine) effectCreateMatter(ctx *Context) (string, error) {
	ctx.Player.Mods.MatterCreation = true
	return "gained power to CREATE MATTER from nothing", nil
}

func (e *Engine) effectDimensionalRift(ctx *Context) (string, error) {
	ctx.Player.Mods.DimensionalPower = true
	return "can now tear DIMENSIONAL RIFTS in space", nil
}

func (e *Engine) effectInfiniteKnowledge(ctx *Context) (string, error) {
	ctx.Player.Mods.InfiniteKnowledge = true
	return "gained INFINITE KNOWLEDGE of all things", nil
}

func (e *Engine) effectSoulSteal(ctx *Context) (string, error) {
	ctx.Player.Mods.SoulSteal += ctx.Magnitude
	return fmt.Sprintf("soul stealing power increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectEnergyBody(ctx *Context) (string, error) {
	ctx.Player.Mods.EnergyBody = true
	return "body transformed into pure ENERGY", nil
}

func (e *Engine) effectAncientWisdom(ctx *Context) (string, error) {
	ctx.Player.Mods.AncientWisdom = true
	return "gained wisdom of the ANCIENTS", nil
}

func (e *Engine) effectLeadership(ctx *Context) (string, error) {
	ctx.Player.Mods.Leadership += ctx.Magnitude
	return "leadership abilities increased", nil
}

func (e *Engine) effectFlight(ctx *Context) (string, error) {
	ctx.Player.Mods.CanFly = true
	return "gained the power of FLIGHT", nil
}

func (e *Engine) effectDetectLies(ctx *Context) (string, error) {
	ctx.Player.Mods.DetectLies = true
	return "can now detect all lies and deception", nil
}

func (e *Engine) effectLevelBonus(ctx *Context) (string, error) {
	if ctx.Magnitude <= 0 {
		return "", fmt.Errorf("magnitude must be positive")
	}
	ctx.Player.Level += ctx.Magnitude
	ctx.Player.MaxHP += ctx.Magnitude * 3
	return fmt.Sprintf("gained %d levels instantly", ctx.Magnitude), nil
}

func (e *Engine) effectImmunity(ctx *Context) (string, error) {
	m := &ctx.Player.Mods
	m.Immunity = maxInt(m.Immunity, ctx.Magnitude)
	return fmt.Sprintf("gained %d%% immunity to all damage", ctx.Magnitude), nil
}

func (e *Engine) effectAllStats(ctx *Context) (string, error) {
	ctx.Player.Mods.StatBonus += ctx.Magnitude
	return fmt.Sprintf("ALL STATS increased by %d", ctx.Magnitude), nil
}

func (e *Engine) effectKickDamage(ctx *Context) (string, error) {
	ctx.Player.Mods.KickDamage += ctx.Magnitude
	return fmt.Sprintf("kick attacks deal +%d damage", ctx.Magnitude), nil
}

func (e *Engine) effectPunchDamage(ctx *Context) (string, error) {
	ctx.Player.Mods.PunchDamage += ctx.Magnitude
	return fmt.Sprintf("punch attacks deal +%d damage", ctx.Magnitude), nil
}

func (e *Engine) effectHPDrain(ctx *Context) (string, error) {
	ctx.Player.Mods.HPDrainPerTurn += ctx.Magnitude
	return fmt.Sprintf("WARNING: losing %d HP per turn", ctx.Magnitude), nil
}
