package drop

// LevelScaling controls how drop chances improve with player level.
// Boosts are linear per level above BaseLevel, capped at MaxLevelBonus
// levels of scaling; the rarer tiers have hard probability caps.
type LevelScaling struct {
	BaseLevel     int `yaml:"base_level"`
	MaxLevelBonus int `yaml:"max_level_bonus"`

	UncommonPerLevel  float64 `yaml:"uncommon_per_level"`
	RarePerLevel      float64 `yaml:"rare_per_level"`
	EpicPerLevel      float64 `yaml:"epic_per_level"`
	LegendaryPerLevel float64 `yaml:"legendary_per_level"`
	MythicPerLevel    float64 `yaml:"mythic_per_level"`

	RareCap      float64 `yaml:"rare_cap"`
	EpicCap      float64 `yaml:"epic_cap"`
	LegendaryCap float64 `yaml:"legendary_cap"`
	MythicCap    float64 `yaml:"mythic_cap"`
}

// DefaultScaling returns the balance constants used in production.
func DefaultScaling() LevelScaling {
	return LevelScaling{
		BaseLevel:     1,
		MaxLevelBonus: 30,

		UncommonPerLevel:  0.007,
		RarePerLevel:      0.003,
		EpicPerLevel:      0.001,
		LegendaryPerLevel: 0.0003,
		MythicPerLevel:    0.00005,

		RareCap:      0.80,
		EpicCap:      0.40,
		LegendaryCap: 0.20,
		MythicCap:    0.05,
	}
}

// commonFloor is the minimum common chance left after scaling shifts
// probability mass to rarer tiers.
const commonFloor = 0.05

// Scaled returns the table adjusted for the given player level.
//
// The boost each tier gains is subtracted from common (floored at
// commonFloor); the no-drop chance is preserved. The result is
// re-normalized, so the table invariant holds on return.
//
// Postcondition: The returned table sums to 1.0 within sumTolerance.
func (s LevelScaling) Scaled(t Table, playerLevel int) (Table, error) {
	levels := playerLevel - s.BaseLevel
	if levels <= 0 {
		return t, nil
	}
	if levels > s.MaxLevelBonus {
		levels = s.MaxLevelBonus
	}
	l := float64(levels)

	uncommon := t.Uncommon + l*s.UncommonPerLevel
	rare := capAt(t.Rare+l*s.RarePerLevel, s.RareCap)
	epic := capAt(t.Epic+l*s.EpicPerLevel, s.EpicCap)
	legendary := capAt(t.Legendary+l*s.LegendaryPerLevel, s.LegendaryCap)
	mythic := capAt(t.Mythic+l*s.MythicPerLevel, s.MythicCap)

	// Only the post-cap increase is taken out of common.
	actualIncrease := (uncommon - t.Uncommon) +
		(rare - t.Rare) +
		(epic - t.Epic) +
		(legendary - t.Legendary) +
		(mythic - t.Mythic)

	common := t.Common - actualIncrease
	if common < commonFloor {
		common = commonFloor
	}

	scaled := Table{
		Common: common, Uncommon: uncommon, Rare: rare,
		Epic: epic, Legendary: legendary, Mythic: mythic,
		NoDrop: t.NoDrop,
	}
	return scaled.normalized()
}

func capAt(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
}
