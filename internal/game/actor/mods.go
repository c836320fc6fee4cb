package actor

// Ally is a summoned combat companion. It strikes once per player turn
// and loses 1 HP per strike until it fades.
type Ally struct {
	HP     int `json:"hp"`
	Damage int `json:"damage"`
}

// Mods is the explicit stat-modifier block carried by every player.
// Every field starts at zero; item effects, skills, and equipment
// recomputes are the only writers. Keeping the fields explicit (rather
// than a dynamic bag) means a snapshot always round-trips losslessly.
type Mods struct {
	// Basic combat stats.
	DamageBonus int `json:"damage_bonus,omitempty"`
	ArmorBonus  int `json:"armor_bonus,omitempty"`
	DodgeBonus  int `json:"dodge_bonus,omitempty"`
	CritChance  int `json:"crit_chance,omitempty"`
	BlockChance int `json:"block_chance,omitempty"`

	// Magic economy.
	Mana             int `json:"mana,omitempty"`
	MaxMana          int `json:"max_mana,omitempty"`
	ManaRegen        int `json:"mana_regen,omitempty"`
	SpellPower       int `json:"spell_power,omitempty"`
	MagicDamageBonus int `json:"magic_damage_bonus,omitempty"`

	// Resistances.
	FireResist  int `json:"fire_resist,omitempty"`
	ColdResist  int `json:"cold_resist,omitempty"`
	MagicResist int `json:"magic_resist,omitempty"`
	VoidResist  int `json:"void_resist,omitempty"`

	// Special abilities.
	LifeSteal   int  `json:"life_steal,omitempty"`
	ArmorPierce int  `json:"armor_pierce,omitempty"`
	Pierce      int  `json:"pierce,omitempty"`
	TrueStrike  bool `json:"true_strike,omitempty"`
	HealOnKill  int  `json:"heal_on_kill,omitempty"`
	EscapeBonus int  `json:"escape_bonus,omitempty"`
	LuckBonus   int  `json:"luck_bonus,omitempty"`
	Regen       int  `json:"regen,omitempty"`

	// Temporary buffs with durations.
	TempDamageBuff       int `json:"temp_damage_buff,omitempty"`
	TempDamageTurns      int `json:"temp_damage_turns,omitempty"`
	TempArmorDebuff      int `json:"temp_armor_debuff,omitempty"`
	TempArmorDebuffTurns int `json:"temp_armor_debuff_turns,omitempty"`
	SpeedBuff            int `json:"speed_buff,omitempty"`
	SpeedTurns           int `json:"speed_turns,omitempty"`

	// Timed defensive states.
	StealthTurns  int `json:"stealth_turns,omitempty"`
	ImmortalTurns int `json:"immortal_turns,omitempty"`
	DivineShield  int `json:"divine_shield,omitempty"`
	ExtraTurns    int `json:"extra_turns,omitempty"`

	// Rare and legendary powers.
	ResurrectCharges  int  `json:"resurrect_charges,omitempty"`
	TrueImmortal      bool `json:"true_immortal,omitempty"`
	Ascended          bool `json:"ascended,omitempty"`
	DivinePower       int  `json:"divine_power,omitempty"`
	CosmicPower       bool `json:"cosmic_power,omitempty"`
	Omnipotent        bool `json:"omnipotent,omitempty"`
	RealityControl    bool `json:"reality_control,omitempty"`
	TimeControl       bool `json:"time_control,omitempty"`
	TimeMaster        bool `json:"time_master,omitempty"`
	StarControl       bool `json:"star_control,omitempty"`
	MultiverseControl bool `json:"multiverse_control,omitempty"`
	InfiniteKnowledge bool `json:"infinite_knowledge,omitempty"`
	InfiniteRegen     bool `json:"infinite_regen,omitempty"`
	EnergyBody        bool `json:"energy_body,omitempty"`
	AncientWisdom     bool `json:"ancient_wisdom,omitempty"`
	CanFly            bool `json:"can_fly,omitempty"`
	DetectLies        bool `json:"detect_lies,omitempty"`
	NightVision       bool `json:"night_vision,omitempty"`
	MatterCreation    bool `json:"matter_creation,omitempty"`
	DimensionalPower  bool `json:"dimensional_power,omitempty"`

	// Utility stats.
	GripStrength     int `json:"grip_strength,omitempty"`
	KickDamage       int `json:"kick_damage,omitempty"`
	PunchDamage      int `json:"punch_damage,omitempty"`
	StunChance       int `json:"stun_chance,omitempty"`
	ReflectChance    int `json:"reflect_chance,omitempty"`
	PhaseShiftChance int `json:"phase_shift_chance,omitempty"`
	StealthBonus     int `json:"stealth_bonus,omitempty"`
	EnergyAbsorb     int `json:"energy_absorb,omitempty"`
	HPDrainPerTurn   int `json:"hp_drain_per_turn,omitempty"`
	SoulSteal        int `json:"soul_steal,omitempty"`
	Leadership       int `json:"leadership,omitempty"`
	Immunity         int `json:"immunity,omitempty"`

	// Tracking.
	WorldsCreated int    `json:"worlds_created,omitempty"`
	StatBonus     int    `json:"stat_bonus,omitempty"`
	SummonedAlly  *Ally  `json:"summoned_ally,omitempty"`
}

// ClearEquipmentBonuses resets the fields that equipment passives are
// allowed to write, so a recompute can reapply them from scratch.
// Consumable-sourced stats that live outside the equipment whitelist
// are left untouched.
func (m *Mods) ClearEquipmentBonuses() {
	m.DamageBonus = 0
	m.ArmorBonus = 0
	m.DodgeBonus = 0
	m.CritChance = 0
	m.BlockChance = 0
	m.LifeSteal = 0
	m.Pierce = 0
	m.ArmorPierce = 0
	m.MagicDamageBonus = 0
	m.SpellPower = 0
	m.ManaRegen = 0
	m.ReflectChance = 0
	m.PhaseShiftChance = 0
	m.StealthBonus = 0
	m.FireResist = 0
	m.ColdResist = 0
	m.MagicResist = 0
	m.VoidResist = 0
	m.GripStrength = 0
	m.KickDamage = 0
	m.PunchDamage = 0
	m.StunChance = 0
	m.TrueStrike = false
	m.CanFly = false
	m.DetectLies = false
	m.NightVision = false
}
