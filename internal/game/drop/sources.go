package drop

// Source identifies what generated a drop roll.
type Source string

const (
	SourceMobKill       Source = "mob_kill"
	SourceBossKill      Source = "boss_kill"
	SourceExploration   Source = "exploration"
	SourceChestCommon   Source = "chest_common"
	SourceChestUncommon Source = "chest_uncommon"
	SourceChestRare     Source = "chest_rare"
	SourceChestEpic     Source = "chest_epic"
	SourceQuestReward   Source = "quest_reward"
	SourceDailyReward   Source = "daily_reward"
)

// Sources lists every drop source.
func Sources() []Source {
	return []Source{
		SourceMobKill, SourceBossKill, SourceExploration,
		SourceChestCommon, SourceChestUncommon, SourceChestRare, SourceChestEpic,
		SourceQuestReward, SourceDailyReward,
	}
}

// Balance constants shared with the encounter reward flow.
const (
	// BossMultiDropChance is the chance a boss yields a second drop.
	BossMultiDropChance = 0.30
	// BossRareMultiDropChance is the chance a boss yields a third drop.
	BossRareMultiDropChance = 0.10
	// ExplorationGoldVsItemRatio is the share of exploration finds that
	// pay out gold instead of rolling the item table.
	ExplorationGoldVsItemRatio = 0.6
)

// BuiltinTables returns the production drop tables per source.
//
// Postcondition: every returned table satisfies the sum invariant.
func BuiltinTables() map[Source]Table {
	return map[Source]Table{
		SourceMobKill:       MustTable(0.50, 0.20, 0.15, 0.05, 0.005, 0.0001, 0.0949),
		SourceBossKill:      MustTable(0.22, 0.24, 0.34, 0.15, 0.04, 0.01, 0),
		SourceExploration:   MustTable(0.58, 0.14, 0.18, 0.08, 0.002, 0.00005, 0.01795),
		SourceChestCommon:   MustTable(0.70, 0.15, 0.14, 0.01, 0, 0, 0),
		SourceChestUncommon: MustTable(0.55, 0.30, 0.12, 0.03, 0, 0, 0),
		SourceChestRare:     MustTable(0.30, 0.20, 0.40, 0.09, 0.01, 0, 0),
		SourceChestEpic:     MustTable(0.10, 0.18, 0.36, 0.30, 0.05, 0.01, 0),
		SourceQuestReward:   MustTable(0.15, 0.15, 0.395, 0.25, 0.05, 0.005, 0),
		SourceDailyReward:   MustTable(0.37, 0.18, 0.29, 0.12, 0.03, 0.01, 0),
	}
}
