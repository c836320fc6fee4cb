package drop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

func newTestEngine(t *testing.T, src rng.Source) *Engine {
	t.Helper()
	e, err := NewDefault(catalog.Default(), src)
	require.NoError(t, err)
	return e
}

func TestNewRejectsMissingTable(t *testing.T) {
	tables := BuiltinTables()
	delete(tables, SourceDailyReward)

	_, err := New(tables, DefaultScaling(), catalog.Default(), rng.NewSeededSource(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing table")
}

func TestNewRejectsNilCatalog(t *testing.T) {
	_, err := New(BuiltinTables(), DefaultScaling(), nil, rng.NewSeededSource(1))
	require.Error(t, err)
}

// Common chest at level 1: thresholds accumulate rarest-first, so a
// draw of 0.005 lands inside the 1% epic band and 0.99 falls through to
// common.
func TestRollRarityChestCommonBoundaries(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want catalog.Rarity
	}{
		{name: "low draw lands on epic", draw: 0.005, want: catalog.RarityEpic},
		{name: "high draw lands on common", draw: 0.99, want: catalog.RarityCommon},
		{name: "mid draw lands on rare", draw: 0.05, want: catalog.RarityRare},
		{name: "uncommon band", draw: 0.20, want: catalog.RarityUncommon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, rng.NewFixedSource(0, tt.draw))
			rarity, ok := e.RollRarity(SourceChestCommon, 1)
			require.True(t, ok)
			assert.Equal(t, tt.want, rarity)
		})
	}
}

func TestRollRarityNoDrop(t *testing.T) {
	// Mob table has 9.49% no-drop at the top of the cumulative range.
	e := newTestEngine(t, rng.NewFixedSource(0, 0.999))
	_, ok := e.RollRarity(SourceMobKill, 1)
	assert.False(t, ok)
}

func TestRollReturnsItemOfRolledRarity(t *testing.T) {
	e := newTestEngine(t, rng.NewFixedSource(0, 0.005))
	item := e.Roll(SourceChestCommon, 1, nil)
	require.NotNil(t, item)
	assert.Equal(t, catalog.RarityEpic, item.Rarity)
}

func TestRollHonorsExclusions(t *testing.T) {
	e := newTestEngine(t, rng.NewFixedSource(0, 0.005))

	exclude := make(map[string]bool)
	for _, item := range catalog.Default().ItemsByRarity(catalog.RarityEpic) {
		exclude[item.Name] = true
	}
	assert.Nil(t, e.Roll(SourceChestCommon, 1, exclude))
}

func TestRollManyExcludesNonStackableDuplicates(t *testing.T) {
	e := newTestEngine(t, rng.NewSeededSource(7))

	drops := e.RollMany(SourceBossKill, 10, 50)
	seen := make(map[string]int)
	for _, item := range drops {
		seen[item.Name]++
		if !item.Stackable {
			assert.Equalf(t, 1, seen[item.Name], "non-stackable %s dropped twice in one batch", item.Name)
		}
	}
}

func TestStatisticsRoughlyMatchTable(t *testing.T) {
	e := newTestEngine(t, rng.NewSeededSource(42))

	stats := e.Statistics(SourceBossKill, 1, 20000)
	table := BuiltinTables()[SourceBossKill]

	assert.InDelta(t, table.Common, stats["common"], 0.02)
	assert.InDelta(t, table.Rare, stats["rare"], 0.02)
	assert.InDelta(t, table.Epic, stats["epic"], 0.02)
	assert.Zero(t, stats["no_drop"])
}
