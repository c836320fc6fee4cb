package catalog

import "fmt"

// MonsterKind distinguishes regular mobs from bosses.
type MonsterKind string

const (
	MonsterMob  MonsterKind = "mob"
	MonsterBoss MonsterKind = "boss"
)

// Monster is a spawnable creature stat block. Spawners scale these base
// values by player level and rarity.
type Monster struct {
	Name         string      `yaml:"name"`
	Kind         MonsterKind `yaml:"kind"`
	HP           int         `yaml:"hp"`
	Atk          int         `yaml:"atk"`
	Armor        int         `yaml:"armor"`
	CreatureType string      `yaml:"creature_type"`
	Affinity     string      `yaml:"affinity"`
	Rarity       Rarity      `yaml:"rarity"`
	Traits       []string    `yaml:"traits,omitempty"`
	// Vulnerabilities list damage elements this creature takes extra
	// damage from.
	Vulnerabilities []string `yaml:"vulnerabilities,omitempty"`
	FireResist      int      `yaml:"fire_resist,omitempty"`
	ColdResist      int      `yaml:"cold_resist,omitempty"`
	MagicResist     int      `yaml:"magic_resist,omitempty"`
	// Locations restricts where the creature may spawn. Empty means the
	// creature is never location-eligible and only appears through the
	// rarity fallback.
	Locations []string `yaml:"locations,omitempty"`
}

// EligibleAt reports whether the monster may spawn in location.
func (m *Monster) EligibleAt(location string) bool {
	for _, loc := range m.Locations {
		if loc == location {
			return true
		}
	}
	return false
}

// Validate checks the monster invariants.
func (m *Monster) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("monster: name must not be empty")
	}
	if m.Kind != MonsterMob && m.Kind != MonsterBoss {
		return fmt.Errorf("monster %s: kind must be mob or boss, got %q", m.Name, m.Kind)
	}
	if m.HP < 1 {
		return fmt.Errorf("monster %s: hp must be >= 1, got %d", m.Name, m.HP)
	}
	if m.Atk < 0 {
		return fmt.Errorf("monster %s: atk must be >= 0, got %d", m.Name, m.Atk)
	}
	if m.Armor < 0 {
		return fmt.Errorf("monster %s: armor must be >= 0, got %d", m.Name, m.Armor)
	}
	if !m.Rarity.Valid() {
		return fmt.Errorf("monster %s: unknown rarity %q", m.Name, m.Rarity)
	}
	return nil
}
