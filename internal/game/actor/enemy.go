package actor

import "github.com/kjohnstone/embervale/internal/game/catalog"

// EnemyKind distinguishes regular mobs from bosses.
type EnemyKind string

const (
	KindMob  EnemyKind = "mob"
	KindBoss EnemyKind = "boss"
)

// rarityBonus scales trait effectiveness by enemy rarity.
func rarityBonus(r catalog.Rarity) float64 {
	switch r {
	case catalog.RarityRare:
		return 1.2
	case catalog.RarityEpic:
		return 1.4
	case catalog.RarityLegendary:
		return 1.6
	case catalog.RarityMythic:
		return 1.8
	default:
		return 1.0
	}
}

// Enemy is a spawned creature instance. Stat blocks come from the
// catalog; the spawner scales them by player level and rarity.
type Enemy struct {
	Participant

	Name            string         `json:"name"`
	Atk             int            `json:"atk"`
	Armor           int            `json:"armor"`
	Kind            EnemyKind      `json:"kind"`
	CreatureType    string         `json:"creature_type"`
	Affinity        string         `json:"affinity"`
	Rarity          catalog.Rarity `json:"rarity"`
	Traits          []string       `json:"traits,omitempty"`
	Vulnerabilities []string       `json:"vulnerabilities,omitempty"`
	FireResist      int            `json:"fire_resist,omitempty"`
	ColdResist      int            `json:"cold_resist,omitempty"`
	MagicResist     int            `json:"magic_resist,omitempty"`

	Enraged   bool `json:"enraged,omitempty"`
	SpecialCD int  `json:"special_cd,omitempty"`
}

// HasTrait reports whether the enemy carries the named trait.
func (e *Enemy) HasTrait(name string) bool {
	for _, t := range e.Traits {
		if t == name {
			return true
		}
	}
	return false
}

// Level estimates the enemy's level from its max HP. Spawned enemies
// don't store a level directly; this keeps trait scaling consistent
// with how stat blocks grow.
func (e *Enemy) Level() int {
	lvl := (e.MaxHP - 5) / 3
	if lvl < 1 {
		return 1
	}
	return lvl
}

// DodgeChance returns the enemy's dodge chance in percent, derived from
// traits, level, and rarity. Capped at 65.
func (e *Enemy) DodgeChance() int {
	bonus := rarityBonus(e.Rarity)
	lvl := float64(e.Level())

	dodge := 0
	if e.HasTrait("evasive") {
		dodge += int((20 + lvl*1.5) * bonus)
	}
	if e.HasTrait("phase_shift") {
		dodge += int((12 + lvl) * bonus)
	}
	if dodge > 65 {
		dodge = 65
	}
	return dodge
}

// ArmorBonus returns extra armor granted by defensive traits.
func (e *Enemy) ArmorBonus() int {
	bonus := rarityBonus(e.Rarity)
	lvl := float64(e.Level())

	armor := 0
	if e.HasTrait("shell") {
		armor += int((2 + lvl*0.3) * bonus)
	}
	if e.HasTrait("stone_skin") {
		armor += int((3 + lvl*0.4) * bonus)
	}
	if e.HasTrait("ice_armor") {
		armor += int((2 + lvl*0.25) * bonus)
	}
	return armor
}

// EffectiveArmor returns base armor plus trait bonuses.
func (e *Enemy) EffectiveArmor() int {
	return e.Armor + e.ArmorBonus()
}

// Intimidating reports whether the enemy has a fear-inducing trait.
func (e *Enemy) Intimidating() bool {
	return e.HasTrait("intimidate") || e.HasTrait("fear") || e.HasTrait("terrifying")
}

// statusTraits maps an inflictable status to the traits that enable it.
var statusTraits = map[string][]string{
	"poison": {"poison", "poison_tail", "poison_breath", "venomous"},
	"burn":   {"burn", "fire_breath", "flame_aura"},
	"freeze": {"freeze", "ice_breath", "frost_aura"},
	"bleed":  {"bleed", "sharp_claws", "rend"},
}

// CanInflict reports whether the enemy's traits allow it to inflict the
// named status on hit.
func (e *Enemy) CanInflict(status string) bool {
	for _, t := range statusTraits[status] {
		if e.HasTrait(t) {
			return true
		}
	}
	return false
}

// VulnerableTo reports whether element is listed in the enemy's
// vulnerabilities.
func (e *Enemy) VulnerableTo(element string) bool {
	for _, v := range e.Vulnerabilities {
		if v == element {
			return true
		}
	}
	return false
}

// ResistAgainst returns the flat resistance the enemy has against the
// given damage element, 0 when unresisted.
func (e *Enemy) ResistAgainst(element string) int {
	switch element {
	case "fire":
		return e.FireResist
	case "ice", "cold":
		return e.ColdResist
	case "magic", "divine", "light":
		return e.MagicResist
	default:
		return 0
	}
}

// RarityScale returns the trait-effectiveness multiplier for the
// enemy's rarity.
func (e *Enemy) RarityScale() float64 {
	return rarityBonus(e.Rarity)
}
