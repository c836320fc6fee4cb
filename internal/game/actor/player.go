package actor

import "fmt"

// BaseMaxHP is the starting max health for a new player.
const BaseMaxHP = 12

// BaseMaxMana is the starting mana pool for a new player.
const BaseMaxMana = 50

// Class is the player's chosen combat class. Empty until selected.
type Class string

const (
	ClassNone    Class = ""
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassRogue   Class = "rogue"
)

// EquipmentSlots lists every equipment slot on a player, in display
// order. The three flavor slots accept trinkets and relics.
func EquipmentSlots() []string {
	return []string{
		"headgear", "armor", "legs", "footwear", "hands", "cape",
		"off_hand", "amulet", "ring1", "ring2", "belt", "main_hand",
		"flavor1", "flavor2", "flavor3",
	}
}

// Player is a chat participant's persistent character.
type Player struct {
	Participant

	Name     string `json:"name"`
	Channel  string `json:"channel"`
	Location string `json:"location"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	XPToNext int    `json:"xp_to_next"`
	Gold     int    `json:"gold"`
	Class    Class  `json:"class,omitempty"`
	// Inventory holds item names; duplicates represent stacks.
	Inventory []string `json:"inventory"`
	// Equipped maps slot name to item name; missing or empty means the
	// slot is free.
	Equipped map[string]string `json:"equipped,omitempty"`
	SkillCD  int               `json:"skill_cd,omitempty"`
	Step     int               `json:"step,omitempty"`
	InCombat bool              `json:"in_combat,omitempty"`
	// CombatEnemy snapshots the opponent so an active fight survives a
	// save/load cycle. Nil outside combat.
	CombatEnemy *Enemy `json:"combat_enemy,omitempty"`

	Mods Mods `json:"mods"`
}

// NewPlayer creates a fresh character at the given start location.
//
// Postcondition: The player starts at level 1, full base health, with a
// Potion in inventory and no class selected.
func NewPlayer(channel, name, location string) *Player {
	return &Player{
		Participant: Participant{HP: BaseMaxHP, MaxHP: BaseMaxHP},
		Name:        name,
		Channel:     channel,
		Location:    location,
		Level:       1,
		XPToNext:    xpToNext(1),
		Inventory:   []string{"Potion"},
		Equipped:    make(map[string]string),
		Mods:        Mods{MaxMana: BaseMaxMana},
	}
}

// Key returns the roster key for a player in a channel.
func Key(channel, username string) string {
	return channel + "#" + username
}

// Key returns the player's roster key.
func (p *Player) Key() string {
	return Key(p.Channel, p.Name)
}

func xpToNext(level int) int {
	return 10 + (level-1)*6
}

// GrantXP adds experience and applies any level-ups, returning the
// narration and the number of levels gained. Event emission is the
// caller's job so this type stays free of service dependencies.
func (p *Player) GrantXP(amount int) (string, int) {
	p.XP += amount
	msg := fmt.Sprintf("+%d XP", amount)
	levels := 0
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		msg += " — " + p.levelUp()
		levels++
	}
	return msg, levels
}

// levelUp advances one level, raises max HP, and fully heals.
func (p *Player) levelUp() string {
	p.Level++
	p.XPToNext = xpToNext(p.Level)
	hpGain := 2
	if p.Class == ClassWarrior {
		hpGain++
	}
	p.MaxHP += hpGain
	p.HP = p.MaxHP
	return fmt.Sprintf("Level %d! Max HP +%d. Fully healed.", p.Level, hpGain)
}

// TotalDamage returns the player's attack damage including all bonuses.
func (p *Player) TotalDamage() int {
	base := 1 + p.Level/2
	bonus := p.Mods.DamageBonus + p.Mods.TempDamageBuff + p.Mods.StatBonus
	if p.Mods.Ascended {
		bonus += 50
	}
	return base + bonus
}

// TotalArmor returns the player's armor including all bonuses, never
// negative.
func (p *Player) TotalArmor() int {
	armor := p.Mods.ArmorBonus + p.Mods.StatBonus - p.Mods.TempArmorDebuff
	if p.Mods.EnergyBody {
		armor += 25
	}
	if armor < 0 {
		return 0
	}
	return armor
}

// TotalSpellPower returns spell power including the mage class passive
// of +1 per level.
func (p *Player) TotalSpellPower() int {
	power := p.Mods.SpellPower
	if p.Class == ClassMage {
		power += p.Level
	}
	return power
}

// TotalMagicDamage returns the magic damage bonus including spell power.
func (p *Player) TotalMagicDamage() int {
	return p.Mods.MagicDamageBonus + p.TotalSpellPower()
}

// DodgeChance returns the player's dodge chance in percent, capped at 95.
func (p *Player) DodgeChance() int {
	base := 0
	if p.Class == ClassRogue {
		base = 20
	}
	bonus := p.Mods.DodgeBonus + p.Mods.StatBonus
	if p.Mods.CanFly {
		bonus += 30
	}
	if p.Mods.EnergyBody {
		bonus += 20
	}
	total := base + bonus
	if total > 95 {
		return 95
	}
	return total
}

// PreventDeath consumes the strongest available death-prevention power
// when the player is at 0 HP. Returns the narration and whether the
// player survived. With no power available the player stays dead and
// the defeat flow takes over.
func (p *Player) PreventDeath() (string, bool) {
	if p.HP > 0 {
		return "", true
	}
	m := &p.Mods
	switch {
	case m.TrueImmortal:
		p.HP = p.MaxHP
		return "Your TRUE IMMORTALITY restores you to full health!", true
	case m.ImmortalTurns > 0:
		p.HP = 1
		return "Your immortality keeps you standing at 1 HP!", true
	case m.ResurrectCharges > 0:
		m.ResurrectCharges--
		p.HP = p.MaxHP
		return fmt.Sprintf("A resurrection charge revives you! (%d left)", m.ResurrectCharges), true
	default:
		return "", false
	}
}

// HasItem reports whether the inventory holds at least one of name.
func (p *Player) HasItem(name string) bool {
	for _, item := range p.Inventory {
		if item == name {
			return true
		}
	}
	return false
}

// RemoveItem removes one instance of name from the inventory. Returns
// false if the item was not held.
func (p *Player) RemoveItem(name string) bool {
	for i, item := range p.Inventory {
		if item == name {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem appends one instance of name to the inventory.
func (p *Player) AddItem(name string) {
	p.Inventory = append(p.Inventory, name)
}

// EquippedItems returns the names of all currently equipped items.
func (p *Player) EquippedItems() []string {
	var items []string
	for _, slot := range EquipmentSlots() {
		if name := p.Equipped[slot]; name != "" {
			items = append(items, name)
		}
	}
	return items
}
