// Package inventory manages the player's bag and equipment slots:
// equipping and unequipping gear, recomputing passive bonuses, and
// consuming usable items through the effect engine.
package inventory

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/effect"
)

// slotsFor maps a catalog slot to the player equipment slots that can
// hold it, in fill order.
func slotsFor(slot catalog.Slot) []string {
	switch slot {
	case catalog.SlotRing:
		return []string{"ring1", "ring2"}
	case catalog.SlotTrinket, catalog.SlotRelic:
		return []string{"flavor1", "flavor2", "flavor3"}
	case catalog.SlotMainHand:
		return []string{"main_hand"}
	case catalog.SlotOffHand:
		return []string{"off_hand"}
	case catalog.SlotConsumable, catalog.SlotMaterial, "":
		return nil
	default:
		return []string{string(slot)}
	}
}

// Manager performs inventory and equipment operations against the item
// catalog. Operation results are user-facing chat lines; the bool
// return reports whether the operation succeeded.
type Manager struct {
	catalog *catalog.Catalog
	effects *effect.Engine
	logger  *zap.Logger
}

// NewManager creates an inventory manager.
//
// Precondition: cat, effects, and logger must be non-nil.
func NewManager(cat *catalog.Catalog, effects *effect.Engine, logger *zap.Logger) *Manager {
	return &Manager{catalog: cat, effects: effects, logger: logger}
}

// Equip moves an item from the bag into its equipment slot, swapping
// out whatever occupied it, and recomputes passive bonuses.
func (m *Manager) Equip(p *actor.Player, itemName string) (string, bool) {
	item, ok := m.catalog.Item(itemName)
	if !ok {
		return fmt.Sprintf("'%s' is not a known item.", strings.TrimSpace(itemName)), false
	}
	if !p.HasItem(item.Name) {
		return fmt.Sprintf("You don't have %s.", item.Name), false
	}
	if !item.Equippable() {
		return fmt.Sprintf("%s can't be equipped.", item.Name), false
	}
	slots := slotsFor(item.Slot)
	if len(slots) == 0 {
		return fmt.Sprintf("%s can't be equipped (no valid slot).", item.Name), false
	}

	for slot, equipped := range p.Equipped {
		if equipped == item.Name {
			return fmt.Sprintf("%s is already equipped in %s.", item.Name, slot), false
		}
	}

	target := slots[0]
	for _, s := range slots {
		if p.Equipped[s] == "" {
			target = s
			break
		}
	}

	swappedOut := p.Equipped[target]
	if swappedOut != "" {
		p.AddItem(swappedOut)
	}
	p.RemoveItem(item.Name)
	if p.Equipped == nil {
		p.Equipped = make(map[string]string)
	}
	p.Equipped[target] = item.Name

	m.Recompute(p)

	if swappedOut != "" {
		return fmt.Sprintf("Equipped %s in %s (swapped out %s).", item.Name, target, swappedOut), true
	}
	return fmt.Sprintf("Equipped %s in %s.", item.Name, target), true
}

// Unequip removes gear by slot name or item name and returns it to the
// bag.
func (m *Manager) Unequip(p *actor.Player, itemOrSlot string) (string, bool) {
	query := strings.ToLower(strings.TrimSpace(itemOrSlot))
	if query == "" {
		return "Specify a slot or item to unequip.", false
	}

	slot := ""
	for _, s := range actor.EquipmentSlots() {
		if s == query {
			slot = s
			break
		}
		if name := p.Equipped[s]; name != "" && strings.ToLower(name) == query {
			slot = s
			break
		}
	}
	if slot == "" {
		return fmt.Sprintf("Nothing equipped for '%s'.", itemOrSlot), false
	}
	removed := p.Equipped[slot]
	if removed == "" {
		return fmt.Sprintf("%s is already empty.", slot), false
	}

	delete(p.Equipped, slot)
	p.AddItem(removed)
	m.Recompute(p)
	return fmt.Sprintf("Unequipped %s from %s.", removed, slot), true
}

// Recompute rebuilds all equipment-sourced bonuses from scratch. Only
// whitelisted passive effects apply from gear; consumable-only effects
// (heals, resurrection charges, level grants) never fire from wearing
// an item.
func (m *Manager) Recompute(p *actor.Player) {
	p.Mods.ClearEquipmentBonuses()
	for _, name := range p.EquippedItems() {
		item, ok := m.catalog.Item(name)
		if !ok {
			m.logger.Warn("equipped item missing from catalog",
				zap.String("player", p.Key()),
				zap.String("item", name),
			)
			continue
		}
		for _, eff := range item.Effects {
			if !effect.IsEquipPassive(eff.Name) {
				continue
			}
			m.effects.Apply(eff.Name, eff.Magnitude, p, nil, eff.Duration)
		}
	}
}

// Use consumes one usable item from the bag and applies its effects,
// against the current enemy if one is given.
func (m *Manager) Use(p *actor.Player, query string, enemy *actor.Enemy) (string, bool) {
	match, suggestions := FindMatch(p.Inventory, query)
	if match == "" {
		if len(suggestions) > 0 {
			return fmt.Sprintf("Unknown item or not in your bag. Did you mean: %s?", strings.Join(suggestions, "; ")), false
		}
		return "Unknown item or you don't have it.", false
	}

	item, ok := m.catalog.Item(match)
	if !ok {
		return fmt.Sprintf("Unknown item: %s", match), false
	}
	if !item.Usable || item.Type != catalog.ItemConsumable {
		return fmt.Sprintf("Cannot use %s.", item.Name), false
	}

	p.RemoveItem(match)

	effects := make([]effect.ItemEffect, len(item.Effects))
	for i, eff := range item.Effects {
		effects[i] = effect.ItemEffect{Name: eff.Name, Magnitude: eff.Magnitude, Duration: eff.Duration}
	}
	results := m.effects.ApplyItem(effects, p, enemy)
	texts := make([]string, len(results))
	for i, res := range results {
		texts[i] = res.Text
	}
	return fmt.Sprintf("You use %s and %s.", item.Name, strings.Join(texts, ", ")), true
}

// Display formats the bag for chat, stacking duplicates.
func (m *Manager) Display(p *actor.Player) string {
	if len(p.Inventory) == 0 {
		return "empty"
	}
	counts := make(map[string]int)
	var order []string
	for _, name := range p.Inventory {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}
	sort.Strings(order)

	parts := make([]string, 0, len(order))
	for _, name := range order {
		if counts[name] > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", name, counts[name]))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
