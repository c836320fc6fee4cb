// Package catalog holds the immutable content catalogs: items, monsters,
// and locations. Catalogs are loaded once at startup from YAML files (or
// from the built-in default set) and never mutated afterwards.
package catalog

// Rarity is the content rarity tier shared by items and monsters.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// Rarities lists all rarity tiers from most to least common.
func Rarities() []Rarity {
	return []Rarity{
		RarityCommon, RarityUncommon, RarityRare,
		RarityEpic, RarityLegendary, RarityMythic,
	}
}

// Valid reports whether r is one of the known rarity tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic:
		return true
	}
	return false
}

// Rank returns the ordering index of r, 0 for common through 5 for
// mythic. Unknown rarities rank as common.
func (r Rarity) Rank() int {
	for i, known := range Rarities() {
		if r == known {
			return i
		}
	}
	return 0
}

// AtLeast reports whether r is the same tier as min or rarer.
func (r Rarity) AtLeast(min Rarity) bool {
	return r.Rank() >= min.Rank()
}
