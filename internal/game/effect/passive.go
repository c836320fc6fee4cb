package effect

// equipPassives are the effect names equipment is allowed to contribute
// during a recompute. Anything outside this set (heals, level grants,
// resurrection charges) only fires when an item is actively used, never
// from merely wearing it.
var equipPassives = map[string]struct{}{
	"damage": {}, "armor": {}, "dodge": {}, "crit_chance": {}, "block_chance": {},
	"life_steal": {}, "pierce": {}, "armor_pierce": {}, "true_strike": {},
	"spell_power": {}, "magic_damage": {},
	"fire_resist": {}, "cold_resist": {}, "magic_resist": {},
	"all_resist": {}, "void_protection": {},
	"stealth": {}, "stealth_bonus": {}, "night_vision": {},
	"detect_lies": {}, "flight": {}, "reflect": {},
	"phase_shift": {}, "phase_shift_chance": {}, "mana_regen": {},
	"grip": {}, "kick_damage": {}, "punch_damage": {}, "stun_chance": {},
	"undead_damage": {}, "light_damage": {}, "lightning_damage": {},
	"ice_damage": {}, "fire_damage": {}, "earth_damage": {},
	"void_damage": {}, "divine_damage": {},
}

// IsEquipPassive reports whether the named effect may be applied from
// equipped gear.
func IsEquipPassive(name string) bool {
	_, ok := equipPassives[name]
	return ok
}
