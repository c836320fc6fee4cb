// Package drop implements the probabilistic loot system: per-source
// rarity tables, level scaling, and item selection against the catalog.
package drop

import (
	"fmt"
	"math"

	"github.com/kjohnstone/embervale/internal/game/catalog"
)

// sumTolerance is the floating-point slack allowed when checking that a
// table's probabilities sum to 1.0.
const sumTolerance = 1e-6

// epsilon below which a probability total is treated as zero.
const epsilon = 1e-9

// Table holds the seven outcome probabilities of a drop source: one per
// rarity tier plus the no-drop chance.
//
// Invariant: After NewTable or any rescale, the probabilities sum to
// 1.0 within sumTolerance and none is negative.
type Table struct {
	Common    float64 `yaml:"common"`
	Uncommon  float64 `yaml:"uncommon"`
	Rare      float64 `yaml:"rare"`
	Epic      float64 `yaml:"epic"`
	Legendary float64 `yaml:"legendary"`
	Mythic    float64 `yaml:"mythic"`
	NoDrop    float64 `yaml:"no_drop"`
}

// NewTable validates and normalizes a drop table.
//
// Postcondition: The returned table's probabilities are non-negative
// and sum to 1.0 within sumTolerance, or an error is returned when
// normalization cannot repair the input.
func NewTable(common, uncommon, rare, epic, legendary, mythic, noDrop float64) (Table, error) {
	t := Table{
		Common: common, Uncommon: uncommon, Rare: rare,
		Epic: epic, Legendary: legendary, Mythic: mythic, NoDrop: noDrop,
	}
	return t.normalized()
}

// MustTable is NewTable for package-level table literals; it panics on
// invalid input, which is a programming error in the built-in tables.
func MustTable(common, uncommon, rare, epic, legendary, mythic, noDrop float64) Table {
	t, err := NewTable(common, uncommon, rare, epic, legendary, mythic, noDrop)
	if err != nil {
		panic("drop: invalid built-in table: " + err.Error())
	}
	return t
}

// Sum returns the total of all probabilities.
func (t Table) Sum() float64 {
	return t.Common + t.Uncommon + t.Rare + t.Epic + t.Legendary + t.Mythic + t.NoDrop
}

// Validate checks the table invariants without modifying it.
func (t Table) Validate() error {
	for _, v := range t.values() {
		if v < 0 {
			return fmt.Errorf("drop table: negative probability %f", v)
		}
	}
	if sum := t.Sum(); math.Abs(sum-1.0) > sumTolerance {
		return fmt.Errorf("drop table: probabilities must sum to 1.0, got %f", sum)
	}
	return nil
}

func (t Table) values() [7]float64 {
	return [7]float64{t.Common, t.Uncommon, t.Rare, t.Epic, t.Legendary, t.Mythic, t.NoDrop}
}

// normalized clamps negative probabilities to zero and rescales so the
// total is 1.0. When the clamped total is effectively zero the
// probability mass is spread uniformly instead.
func (t Table) normalized() (Table, error) {
	if err := t.Validate(); err == nil {
		return t, nil
	}

	vals := t.values()
	total := 0.0
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
		}
		total += vals[i]
	}

	if total <= epsilon {
		uniform := 1.0 / float64(len(vals))
		for i := range vals {
			vals[i] = uniform
		}
	} else {
		for i := range vals {
			vals[i] /= total
		}
	}

	out := Table{
		Common: vals[0], Uncommon: vals[1], Rare: vals[2],
		Epic: vals[3], Legendary: vals[4], Mythic: vals[5], NoDrop: vals[6],
	}
	if err := out.Validate(); err != nil {
		return Table{}, fmt.Errorf("normalizing drop table: %w", err)
	}
	return out, nil
}

// Chance returns the probability of the given rarity tier.
func (t Table) Chance(r catalog.Rarity) float64 {
	switch r {
	case catalog.RarityCommon:
		return t.Common
	case catalog.RarityUncommon:
		return t.Uncommon
	case catalog.RarityRare:
		return t.Rare
	case catalog.RarityEpic:
		return t.Epic
	case catalog.RarityLegendary:
		return t.Legendary
	case catalog.RarityMythic:
		return t.Mythic
	default:
		return 0
	}
}
