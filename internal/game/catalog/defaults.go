package catalog

// Default returns the built-in content set. It backs tests, the drop
// simulator, and any deployment that ships without a content directory.
//
// Postcondition: Returns a valid catalog; panics only if the built-in
// content itself is broken, which is a programming error.
func Default() *Catalog {
	c, err := New(defaultItems(), defaultMonsters(), defaultLocations())
	if err != nil {
		panic("catalog: built-in content invalid: " + err.Error())
	}
	return c
}

func defaultItems() []*Item {
	return []*Item{
		// Common
		{Name: "Potion", Type: ItemConsumable, Slot: SlotConsumable, Rarity: RarityCommon,
			Description: "A basic healing potion.", Effects: []ItemEffect{{Name: "heal", Magnitude: 6}},
			Value: 3, Stackable: true, Usable: true},
		{Name: "Herb", Type: ItemMisc, Slot: SlotMaterial, Rarity: RarityCommon,
			Description: "A common herb found in the wild.", Value: 1, Stackable: true},
		{Name: "Bandage", Type: ItemConsumable, Slot: SlotConsumable, Rarity: RarityCommon,
			Description: "Stops bleeding and closes small wounds.",
			Effects:     []ItemEffect{{Name: "heal", Magnitude: 3}}, Value: 2, Stackable: true, Usable: true},
		{Name: "Wooden Sword", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityCommon,
			Description: "A crude wooden training sword.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 2}}, Value: 5},
		{Name: "Wooden Shield", Type: ItemArmor, Slot: SlotOffHand, Rarity: RarityCommon,
			Description: "A basic wooden shield.",
			Effects:     []ItemEffect{{Name: "armor", Magnitude: 1}, {Name: "block_chance", Magnitude: 5}}, Value: 8},
		{Name: "Leather Cap", Type: ItemArmor, Slot: SlotHeadgear, Rarity: RarityCommon,
			Description: "A worn leather cap.",
			Effects:     []ItemEffect{{Name: "armor", Magnitude: 1}}, Value: 6},

		// Uncommon
		{Name: "Greater Potion", Type: ItemConsumable, Slot: SlotConsumable, Rarity: RarityUncommon,
			Description: "A stronger healing draught.",
			Effects:     []ItemEffect{{Name: "heal", Magnitude: 14}}, Value: 10, Stackable: true, Usable: true},
		{Name: "Iron Sword", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityUncommon,
			Description: "A dependable iron blade.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 4}}, Value: 18},
		{Name: "Chainmail Vest", Type: ItemArmor, Slot: SlotArmor, Rarity: RarityUncommon,
			Description: "Interlocked rings over padded cloth.",
			Effects:     []ItemEffect{{Name: "armor", Magnitude: 3}}, Value: 22},
		{Name: "Scout Boots", Type: ItemArmor, Slot: SlotFootwear, Rarity: RarityUncommon,
			Description: "Light boots favored by scouts.",
			Effects:     []ItemEffect{{Name: "dodge", Magnitude: 5}}, Value: 15},

		// Rare
		{Name: "Enchanted Dagger", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityRare,
			Description: "A dagger with a faintly glowing edge.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 5}, {Name: "crit_chance", Magnitude: 10}}, Value: 45},
		{Name: "Flame Brand", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityRare,
			Description: "A sword wreathed in smokeless flame.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 4}, {Name: "fire_damage", Magnitude: 6}}, Value: 60},
		{Name: "Amulet of Warding", Type: ItemArmor, Slot: SlotAmulet, Rarity: RarityRare,
			Description: "Wards against hostile magic.",
			Effects:     []ItemEffect{{Name: "magic_resist", Magnitude: 8}, {Name: "fire_resist", Magnitude: 5}}, Value: 50},
		{Name: "Elixir of Fury", Type: ItemConsumable, Slot: SlotConsumable, Rarity: RarityRare,
			Description: "Battle fury in a bottle.",
			Effects:     []ItemEffect{{Name: "damage_buff", Magnitude: 5, Duration: 5}}, Value: 35, Stackable: true, Usable: true},

		// Epic
		{Name: "Stormcaller Staff", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityEpic,
			Description: "Crackles with barely contained lightning.",
			Effects:     []ItemEffect{{Name: "spell_power", Magnitude: 10}, {Name: "lightning_damage", Magnitude: 8}}, Value: 140},
		{Name: "Dragonscale Mail", Type: ItemArmor, Slot: SlotArmor, Rarity: RarityEpic,
			Description: "Armor wrought from shed dragon scales.",
			Effects:     []ItemEffect{{Name: "armor", Magnitude: 6}, {Name: "fire_resist", Magnitude: 12}}, Value: 160},
		{Name: "Shadow Cloak", Type: ItemArmor, Slot: SlotCape, Rarity: RarityEpic,
			Description: "Drinks in the light around its wearer.",
			Effects:     []ItemEffect{{Name: "stealth_bonus", Magnitude: 15}, {Name: "dodge", Magnitude: 10}}, Value: 130},
		{Name: "Vampiric Blade", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityEpic,
			Description: "Thirsts for the blood of its victims.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 6}, {Name: "life_steal", Magnitude: 3}}, Value: 150},

		// Legendary
		{Name: "Sunforged Greatsword", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityLegendary,
			Description: "Forged in the heart of a dying star.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 10}, {Name: "divine_damage", Magnitude: 10}}, Value: 400},
		{Name: "Phoenix Feather Charm", Type: ItemMisc, Slot: SlotTrinket, Rarity: RarityLegendary,
			Description: "Still warm to the touch.",
			Effects:     []ItemEffect{{Name: "fire_resist", Magnitude: 20}, {Name: "mana_regen", Magnitude: 2}}, Value: 350},
		{Name: "Crown of Insight", Type: ItemArmor, Slot: SlotHeadgear, Rarity: RarityLegendary,
			Description: "Whispers truths to its wearer.",
			Effects:     []ItemEffect{{Name: "detect_lies", Magnitude: 1}, {Name: "spell_power", Magnitude: 15}}, Value: 380},

		// Mythic
		{Name: "Heart of the Multiverse", Type: ItemMisc, Slot: SlotRelic, Rarity: RarityMythic,
			Description: "A shard of creation itself.",
			Effects:     []ItemEffect{{Name: "all_resist", Magnitude: 25}, {Name: "reflect", Magnitude: 20}}, Value: 2000},
		{Name: "Worldrender", Type: ItemWeapon, Slot: SlotMainHand, Rarity: RarityMythic,
			Description: "Reality frays along its edge.",
			Effects:     []ItemEffect{{Name: "damage", Magnitude: 20}, {Name: "void_damage", Magnitude: 15}, {Name: "true_strike", Magnitude: 1}}, Value: 2500},
	}
}

func defaultMonsters() []*Monster {
	return []*Monster{
		// Mobs
		{Name: "Forest Wolf", Kind: MonsterMob, HP: 8, Atk: 2, Armor: 0, CreatureType: "beast",
			Affinity: "nature", Rarity: RarityCommon, Traits: []string{"sharp_claws"},
			Vulnerabilities: []string{"fire"},
			Locations:       []string{"Whispering Grove", "Shaded Glade", "Wildflower Meadow"}},
		{Name: "Cave Bat", Kind: MonsterMob, HP: 6, Atk: 2, Armor: 0, CreatureType: "beast",
			Affinity: "darkness", Rarity: RarityCommon, Traits: []string{"evasive"},
			Locations: []string{"Dark Thicket", "Crystal Cavern", "Echoing Grotto"}},
		{Name: "Skeleton", Kind: MonsterMob, HP: 9, Atk: 3, Armor: 1, CreatureType: "undead",
			Affinity: "darkness", Rarity: RarityCommon,
			Vulnerabilities: []string{"divine", "light"},
			Locations:       []string{"Abandoned Catacombs", "Sunken Crypt"}},
		{Name: "Giant Spider", Kind: MonsterMob, HP: 10, Atk: 3, Armor: 1, CreatureType: "beast",
			Affinity: "nature", Rarity: RarityUncommon, Traits: []string{"venomous"},
			Vulnerabilities: []string{"fire"},
			Locations:       []string{"Dark Thicket", "Briar Patch"}},
		{Name: "Fire Imp", Kind: MonsterMob, HP: 11, Atk: 4, Armor: 1, CreatureType: "demon",
			Affinity: "fire", Rarity: RarityUncommon, Traits: []string{"flame_aura"},
			Vulnerabilities: []string{"ice", "divine"}, FireResist: 3,
			Locations: []string{"Lava Fissure", "Crystal Cavern"}},
		{Name: "Shadow Wraith", Kind: MonsterMob, HP: 14, Atk: 5, Armor: 1, CreatureType: "undead",
			Affinity: "darkness", Rarity: RarityRare, Traits: []string{"phase_shift", "regen"},
			Vulnerabilities: []string{"light", "divine"}, MagicResist: 2,
			Locations: []string{"Abandoned Catacombs", "Sunken Crypt"}},
		{Name: "Earth Golem", Kind: MonsterMob, HP: 20, Atk: 5, Armor: 4, CreatureType: "construct",
			Affinity: "earth", Rarity: RarityRare, Traits: []string{"stone_skin"},
			Vulnerabilities: []string{"lightning"},
			Locations:       []string{"Crystal Cavern", "Stalactite Chamber"}},
		{Name: "Draconic Warlock", Kind: MonsterMob, HP: 45, Atk: 11, Armor: 5, CreatureType: "dragon",
			Affinity: "darkness", Rarity: RarityLegendary, Traits: []string{"magic_damage", "intimidate"},
			Vulnerabilities: []string{"light", "divine"},
			Locations:       []string{"Buried Temple"}},
		{Name: "Void Leviathan", Kind: MonsterMob, HP: 100, Atk: 20, Armor: 6, CreatureType: "aberration",
			Affinity: "void", Rarity: RarityMythic, Traits: []string{"void_damage", "intimidate"},
			Vulnerabilities: []string{"divine", "light"},
			Locations:       []string{"Chasm Edge"}},
		{Name: "Frost Drake", Kind: MonsterMob, HP: 26, Atk: 7, Armor: 2, CreatureType: "dragon",
			Affinity: "ice", Rarity: RarityEpic, Traits: []string{"ice_breath", "ice_armor"},
			Vulnerabilities: []string{"fire"}, ColdResist: 4,
			Locations: []string{"Frozen Pond"}},

		// Bosses
		{Name: "Giant Toad", Kind: MonsterBoss, HP: 22, Atk: 4, Armor: 2, CreatureType: "beast",
			Affinity: "water", Rarity: RarityCommon, Traits: []string{"poison", "intimidate"},
			Vulnerabilities: []string{"lightning", "fire"},
			Locations:       []string{"Twilight Marsh", "Boggy Mire"}},
		{Name: "Bone Shaman", Kind: MonsterBoss, HP: 20, Atk: 4, Armor: 0, CreatureType: "undead",
			Affinity: "darkness", Rarity: RarityUncommon, Traits: []string{"necromancy"},
			Vulnerabilities: []string{"divine", "light"},
			Locations:       []string{"Abandoned Catacombs", "Forgotten Ossuary"}},
		{Name: "Bridge Troll", Kind: MonsterBoss, HP: 34, Atk: 6, Armor: 3, CreatureType: "giant",
			Affinity: "earth", Rarity: RarityRare, Traits: []string{"regen", "slam"},
			Vulnerabilities: []string{"lightning"},
			Locations:       []string{"Fallen Log Crossing", "Serpent's Brook"}},
		{Name: "Cinder Wraith", Kind: MonsterBoss, HP: 26, Atk: 6, Armor: 0, CreatureType: "undead",
			Affinity: "fire", Rarity: RarityRare, Traits: []string{"flame_aura", "phase_shift"},
			Vulnerabilities: []string{"ice", "divine"}, FireResist: 5,
			Locations: []string{"Ashen Clearing", "Lava Fissure"}},
		{Name: "Inferno Demon", Kind: MonsterBoss, HP: 36, Atk: 8, Armor: 2, CreatureType: "demon",
			Affinity: "fire", Rarity: RarityEpic, Traits: []string{"fire_breath", "intimidate"},
			Vulnerabilities: []string{"ice", "divine"}, FireResist: 6,
			Locations: []string{"Lava Fissure"}},
		{Name: "Frost Lich", Kind: MonsterBoss, HP: 36, Atk: 7, Armor: 2, CreatureType: "undead",
			Affinity: "ice", Rarity: RarityEpic, Traits: []string{"ice_breath", "necromancy"},
			Vulnerabilities: []string{"fire", "divine"}, ColdResist: 6,
			Locations: []string{"Frozen Pond", "Silent Tomb"}},
		{Name: "Archdemon", Kind: MonsterBoss, HP: 56, Atk: 10, Armor: 3, CreatureType: "demon",
			Affinity: "darkness", Rarity: RarityLegendary, Traits: []string{"intimidate", "fire_breath"},
			Vulnerabilities: []string{"divine", "light"}, FireResist: 8, MagicResist: 4,
			Locations: []string{"Cursed Battlefield"}},
		{Name: "Cosmic Horror", Kind: MonsterBoss, HP: 80, Atk: 11, Armor: 4, CreatureType: "aberration",
			Affinity: "void", Rarity: RarityMythic, Traits: []string{"intimidate", "reality_control"},
			Vulnerabilities: []string{"divine", "light"}, MagicResist: 6,
			Locations: []string{"Chasm Edge", "Buried Temple"}},
	}
}

func defaultLocations() []string {
	return []string{
		"Dark Thicket", "Whispering Grove", "Shaded Glade", "Twilight Marsh",
		"Briar Patch", "Frozen Pond", "Ashen Clearing", "Wildflower Meadow",
		"Crystal Cavern", "Echoing Grotto", "Abandoned Catacombs", "Buried Temple",
		"Stalactite Chamber", "Chasm Edge", "Sunken Crypt", "Lava Fissure",
		"Forgotten Ossuary", "Silent Tomb", "Fallen Log Crossing", "Serpent's Brook",
		"Boggy Mire", "Cursed Battlefield",
	}
}
