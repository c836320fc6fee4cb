package catalog

import (
	"fmt"
	"strings"
)

// Catalog is the immutable content set the game runs against.
//
// Invariant: After New returns, the catalog is never mutated; all
// lookups are safe for concurrent use.
type Catalog struct {
	items     map[string]*Item
	byRarity  map[Rarity][]*Item
	mobs      []*Monster
	bosses    []*Monster
	locations []string
}

// New builds a validated catalog from the given content.
//
// Precondition: items, monsters, and locations must be non-empty.
// Postcondition: Returns a catalog with per-rarity item indexes, or an
// error naming the first invalid entry.
func New(items []*Item, monsters []*Monster, locations []string) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog: no items")
	}
	if len(monsters) == 0 {
		return nil, fmt.Errorf("catalog: no monsters")
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("catalog: no locations")
	}

	c := &Catalog{
		items:     make(map[string]*Item, len(items)),
		byRarity:  make(map[Rarity][]*Item),
		locations: append([]string(nil), locations...),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		key := strings.ToLower(item.Name)
		if _, exists := c.items[key]; exists {
			return nil, fmt.Errorf("catalog: duplicate item %q", item.Name)
		}
		c.items[key] = item
		c.byRarity[item.Rarity] = append(c.byRarity[item.Rarity], item)
	}

	for _, m := range monsters {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		switch m.Kind {
		case MonsterMob:
			c.mobs = append(c.mobs, m)
		case MonsterBoss:
			c.bosses = append(c.bosses, m)
		}
	}
	if len(c.mobs) == 0 {
		return nil, fmt.Errorf("catalog: no mobs")
	}
	if len(c.bosses) == 0 {
		return nil, fmt.Errorf("catalog: no bosses")
	}

	return c, nil
}

// Item looks up an item by name, case-insensitively.
func (c *Catalog) Item(name string) (*Item, bool) {
	item, ok := c.items[strings.ToLower(strings.TrimSpace(name))]
	return item, ok
}

// ItemsByRarity returns all items of the given rarity. The returned
// slice must not be modified.
func (c *Catalog) ItemsByRarity(r Rarity) []*Item {
	return c.byRarity[r]
}

// Mobs returns all mob stat blocks.
func (c *Catalog) Mobs() []*Monster { return c.mobs }

// Bosses returns all boss stat blocks.
func (c *Catalog) Bosses() []*Monster { return c.bosses }

// Locations returns all known location names.
func (c *Catalog) Locations() []string { return c.locations }

// HasLocation reports whether name is a known location.
func (c *Catalog) HasLocation(name string) bool {
	for _, loc := range c.locations {
		if loc == name {
			return true
		}
	}
	return false
}
