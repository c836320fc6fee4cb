package drop

import (
	"fmt"

	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

// Engine rolls drops against the catalog. It is immutable after New and
// safe for concurrent use as long as the Source is.
type Engine struct {
	tables  map[Source]Table
	scaling LevelScaling
	catalog *catalog.Catalog
	src     rng.Source
}

// New builds a drop engine with the given tables and scaling.
//
// Precondition: cat and src must be non-nil; tables must cover every
// source returned by Sources().
// Postcondition: Returns a ready engine or an error naming the missing
// or invalid table.
func New(tables map[Source]Table, scaling LevelScaling, cat *catalog.Catalog, src rng.Source) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("drop: nil catalog")
	}
	if src == nil {
		return nil, fmt.Errorf("drop: nil random source")
	}
	for _, s := range Sources() {
		t, ok := tables[s]
		if !ok {
			return nil, fmt.Errorf("drop: missing table for source %s", s)
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("drop: table for source %s: %w", s, err)
		}
	}
	return &Engine{tables: tables, scaling: scaling, catalog: cat, src: src}, nil
}

// NewDefault builds a drop engine with the built-in tables and scaling.
func NewDefault(cat *catalog.Catalog, src rng.Source) (*Engine, error) {
	return New(BuiltinTables(), DefaultScaling(), cat, src)
}

// Table returns the base (unscaled) table for a source.
func (e *Engine) Table(s Source) Table {
	return e.tables[s]
}

// RollRarity draws a rarity from the level-scaled table of the given
// source. The second return is false when the roll lands on no-drop.
//
// Tiers are checked rarest first so scaling never starves the rare
// tiers behind an oversized common chance.
func (e *Engine) RollRarity(s Source, playerLevel int) (catalog.Rarity, bool) {
	t, err := e.scaling.Scaled(e.tables[s], playerLevel)
	if err != nil {
		// Scaling cannot fail on a validated base table; fall back to it.
		t = e.tables[s]
	}

	roll := e.src.Float64()
	thresholds := []struct {
		chance float64
		rarity catalog.Rarity
	}{
		{t.Mythic, catalog.RarityMythic},
		{t.Legendary, catalog.RarityLegendary},
		{t.Epic, catalog.RarityEpic},
		{t.Rare, catalog.RarityRare},
		{t.Uncommon, catalog.RarityUncommon},
		{t.Common, catalog.RarityCommon},
	}

	acc := 0.0
	for _, th := range thresholds {
		acc += th.chance
		if roll < acc {
			return th.rarity, true
		}
	}
	return "", false
}

// Roll generates a single item drop for the source, excluding the named
// items from selection. Returns nil when the roll lands on no-drop or
// no eligible item of the rolled rarity exists.
func (e *Engine) Roll(s Source, playerLevel int, exclude map[string]bool) *catalog.Item {
	rarity, ok := e.RollRarity(s, playerLevel)
	if !ok {
		return nil
	}

	candidates := e.catalog.ItemsByRarity(rarity)
	var available []*catalog.Item
	for _, item := range candidates {
		if !exclude[item.Name] {
			available = append(available, item)
		}
	}
	if len(available) == 0 {
		return nil
	}
	return available[e.src.Intn(len(available))]
}

// RollMany generates up to count drops, excluding non-stackable items
// already granted in this batch so a boss never drops two of the same
// sword.
func (e *Engine) RollMany(s Source, playerLevel, count int) []*catalog.Item {
	var drops []*catalog.Item
	exclude := make(map[string]bool)
	for i := 0; i < count; i++ {
		item := e.Roll(s, playerLevel, exclude)
		if item == nil {
			continue
		}
		drops = append(drops, item)
		if !item.Stackable {
			exclude[item.Name] = true
		}
	}
	return drops
}

// Statistics runs trials rolls against the source and returns the
// observed frequency per outcome, keyed by rarity plus "no_drop".
// Intended for balance tooling, not the hot path.
//
// Precondition: trials > 0.
func (e *Engine) Statistics(s Source, playerLevel, trials int) map[string]float64 {
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		rarity, ok := e.RollRarity(s, playerLevel)
		if !ok {
			counts["no_drop"]++
			continue
		}
		counts[string(rarity)]++
	}

	out := make(map[string]float64, len(counts))
	for k, v := range counts {
		out[k] = float64(v) / float64(trials)
	}
	return out
}
