package catalog

import "fmt"

// ItemType is the broad item category.
type ItemType string

const (
	ItemConsumable ItemType = "consumable"
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemMisc       ItemType = "misc"
)

// Slot identifies where an item can be equipped. Non-equipment items
// use SlotConsumable or SlotMaterial.
type Slot string

const (
	SlotHeadgear   Slot = "headgear"
	SlotArmor      Slot = "armor"
	SlotLegs       Slot = "legs"
	SlotFootwear   Slot = "footwear"
	SlotHands      Slot = "hands"
	SlotCape       Slot = "cape"
	SlotOffHand    Slot = "off-hand"
	SlotAmulet     Slot = "amulet"
	SlotRing       Slot = "ring"
	SlotBelt       Slot = "belt"
	SlotMainHand   Slot = "main-hand"
	SlotTrinket    Slot = "trinket"
	SlotRelic      Slot = "relic"
	SlotConsumable Slot = "consumable"
	SlotMaterial   Slot = "material"
)

// ItemEffect is an effect descriptor carried by an item. Name refers to
// a handler in the effect engine; Duration is 0 for permanent effects.
type ItemEffect struct {
	Name      string `yaml:"name"`
	Magnitude int    `yaml:"magnitude"`
	Duration  int    `yaml:"duration,omitempty"`
}

// Item is a single catalog entry. Items are immutable; player state
// references them by name.
type Item struct {
	Name        string       `yaml:"name"`
	Type        ItemType     `yaml:"type"`
	Slot        Slot         `yaml:"slot"`
	Rarity      Rarity       `yaml:"rarity"`
	Description string       `yaml:"description"`
	Effects     []ItemEffect `yaml:"effects,omitempty"`
	Value       int          `yaml:"value"`
	Stackable   bool         `yaml:"stackable"`
	Usable      bool         `yaml:"usable"`
}

// Equippable reports whether the item occupies an equipment slot.
func (i *Item) Equippable() bool {
	switch i.Slot {
	case SlotConsumable, SlotMaterial, "":
		return false
	}
	return i.Type != ItemConsumable
}

// Validate checks the item invariants.
//
// Postcondition: Returns nil iff the item has a name, a known rarity,
// and every effect has a non-empty name.
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item: name must not be empty")
	}
	if !i.Rarity.Valid() {
		return fmt.Errorf("item %s: unknown rarity %q", i.Name, i.Rarity)
	}
	if i.Value < 0 {
		return fmt.Errorf("item %s: value must be >= 0, got %d", i.Name, i.Value)
	}
	for idx, eff := range i.Effects {
		if eff.Name == "" {
			return fmt.Errorf("item %s: effect[%d] must have a non-empty name", i.Name, idx)
		}
		if eff.Duration < 0 {
			return fmt.Errorf("item %s: effect[%d] duration must be >= 0, got %d", i.Name, idx, eff.Duration)
		}
	}
	return nil
}
