package effect

// newHandlers builds the built-in handler table. Keys are the effect
// names carried by catalog items; every key maps to exactly one handler.
func (e *Engine) newHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		// Basic.
		"heal":         e.effectHeal,
		"damage":       e.effectDamage,
		"armor":        e.effectArmor,
		"mana":         e.effectMana,
		"max_hp_bonus": e.effectMaxHPBonus,

		// Temporary combat mods.
		"damage_buff":  e.effectDamageBuff,
		"armor_debuff": e.effectArmorDebuff,
		"dodge":        e.effectDodge,
		"crit_chance":  e.effectCritChance,
		"block_chance": e.effectBlockChance,
		"life_steal":   e.effectLifeSteal,
		"pierce":       e.effectPierce,
		"armor_pierce": e.effectArmorPierce,
		"true_strike":  e.effectTrueStrike,

		// Status (DOT and control).
		"bleed":       e.effectBleed,
		"burn":        e.effectBurn,
		"poison":      e.effectPoison,
		"regen":       e.effectRegen,
		"stun_chance": e.effectStunChance,
		"intimidate":  e.effectIntimidate,

		// Elemental direct damage.
		"fire_damage":      e.effectFireDamage,
		"ice_damage":       e.effectIceDamage,
		"earth_damage":     e.effectEarthDamage,
		"lightning":        e.effectLightning,
		"lightning_damage": e.effectLightningDamage,
		"void_damage":      e.effectVoidDamage,
		"divine_damage":    e.effectDivineDamage,
		"magic_damage":     e.effectMagicDamage,
		"undead_damage":    e.effectUndeadDamage,
		"light_damage":     e.effectLightDamage,

		// Resists and defense.
		"fire_resist":     e.effectFireResist,
		"cold_resist":     e.effectColdResist,
		"magic_resist":    e.effectMagicResist,
		"all_resist":      e.effectAllResist,
		"void_protection": e.effectVoidProtection,
		"divine_shield":   e.effectDivineShield,

		// Utility.
		"stealth":       e.effectStealth,
		"stealth_bonus": e.effectStealthBonus,
		"speed_buff":    e.effectSpeedBuff,
		"escape_chance": e.effectEscapeChance,
		"night_vision":  e.effectNightVision,
		"grip":          e.effectGrip,

		// Magic economy.
		"mana_regen":    e.effectManaRegen,
		"spell_power":   e.effectSpellPower,
		"energy_absorb": e.effectEnergyAbsorb,
		"reflect":       e.effectReflect,
		"phase_shift":   e.effectPhaseShift,

		// Summons and turns.
		"extra_turn":     e.effectExtraTurn,
		"heal_on_kill":   e.effectHealOnKill,
		"summon_ally":    e.effectSummonAlly,
		"storm_call":     e.effectStormCall,
		"quantum_strike": e.effectQuantumStrike,

		// Status removal.
		"cure_poison":  e.effectCurePoison,
		"cure_all":     e.effectCureAll,
		"remove_curse": e.effectRemoveCurse,

		// Legendary and mythic.
		"resurrect":           e.effectResurrect,
		"immortality":         e.effectImmortality,
		"true_immortality":    e.effectTrueImmortality,
		"infinite_regen":      e.effectInfiniteRegen,
		"ascend":              e.effectAscend,
		"divine_power":        e.effectDivinePower,
		"cosmic_power":        e.effectCosmicPower,
		"omnipotence":         e.effectOmnipotence,
		"reality_control":     e.effectRealityControl,
		"time_control":        e.effectTimeControl,
		"time_mastery":        e.effectTimeMastery,
		"star_control":        e.effectStarControl,
		"multiverse_control":  e.effectMultiverseControl,
		"probability_control": e.effectProbabilityControl,
		"create_world":        e.effectCreateWorld,
		"create_matter":       e.effectCreateMatter,
		"dimensional_rift":    e.effectDimensionalRift,
		"infinite_knowledge":  e.effectInfiniteKnowledge,
		"soul_steal":          e.effectSoulSteal,
		"energy_body":         e.effectEnergyBody,
		"ancient_wisdom":      e.effectAncientWisdom,
		"leadership":          e.effectLeadership,
		"flight":              e.effectFlight,
		"detect_lies":         e.effectDetectLies,
		"level_bonus":         e.effectLevelBonus,
		"immunity":            e.effectImmunity,
		"all_stats":           e.effectAllStats,

		// Physical.
		"kick_damage":  e.effectKickDamage,
		"punch_damage": e.effectPunchDamage,
		"hp_drain":     e.effectHPDrain,
	}
}
