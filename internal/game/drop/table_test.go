package drop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuiltinTablesSumToOne(t *testing.T) {
	for source, table := range BuiltinTables() {
		assert.NoErrorf(t, table.Validate(), "table for %s", source)
		assert.InDeltaf(t, 1.0, table.Sum(), sumTolerance, "table for %s", source)
	}
}

func TestNewTableNormalizesSkewedInput(t *testing.T) {
	table, err := NewTable(2, 1, 1, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, table.Common, sumTolerance)
	assert.InDelta(t, 0.25, table.Uncommon, sumTolerance)
	assert.InDelta(t, 1.0, table.Sum(), sumTolerance)
}

func TestNewTableClampsNegatives(t *testing.T) {
	table, err := NewTable(0.5, -0.2, 0.5, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, table.Uncommon)
	assert.InDelta(t, 1.0, table.Sum(), sumTolerance)
}

func TestNewTableUniformFallback(t *testing.T) {
	table, err := NewTable(0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	uniform := 1.0 / 7.0
	assert.InDelta(t, uniform, table.Common, sumTolerance)
	assert.InDelta(t, uniform, table.NoDrop, sumTolerance)
	assert.InDelta(t, 1.0, table.Sum(), sumTolerance)
}

func TestNormalizationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.Float64Range(-1, 10)
		table, err := NewTable(
			gen.Draw(t, "common"),
			gen.Draw(t, "uncommon"),
			gen.Draw(t, "rare"),
			gen.Draw(t, "epic"),
			gen.Draw(t, "legendary"),
			gen.Draw(t, "mythic"),
			gen.Draw(t, "nodrop"),
		)
		if err != nil {
			t.Skip("normalization rejected input")
		}
		if math.Abs(table.Sum()-1.0) > sumTolerance {
			t.Fatalf("normalized table sums to %f", table.Sum())
		}
		for _, v := range table.values() {
			if v < 0 {
				t.Fatalf("negative probability %f survived normalization", v)
			}
		}
	})
}

func TestScaledRespectsCaps(t *testing.T) {
	scaling := DefaultScaling()
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 100).Draw(t, "level")
		base := BuiltinTables()[SourceBossKill]

		scaled, err := scaling.Scaled(base, level)
		require.NoError(t, err)

		// Caps hold before re-normalization shrinks values further, so
		// the post-normalization values can only be at or below them.
		if scaled.Rare > scaling.RareCap+sumTolerance {
			t.Fatalf("rare %f exceeds cap", scaled.Rare)
		}
		if scaled.Epic > scaling.EpicCap+sumTolerance {
			t.Fatalf("epic %f exceeds cap", scaled.Epic)
		}
		if scaled.Legendary > scaling.LegendaryCap+sumTolerance {
			t.Fatalf("legendary %f exceeds cap", scaled.Legendary)
		}
		if scaled.Mythic > scaling.MythicCap+sumTolerance {
			t.Fatalf("mythic %f exceeds cap", scaled.Mythic)
		}
		if math.Abs(scaled.Sum()-1.0) > sumTolerance {
			t.Fatalf("scaled table sums to %f", scaled.Sum())
		}
	})
}

func TestScaledLevelOneIsIdentity(t *testing.T) {
	scaling := DefaultScaling()
	base := BuiltinTables()[SourceMobKill]

	scaled, err := scaling.Scaled(base, 1)
	require.NoError(t, err)
	assert.Equal(t, base, scaled)
}

func TestScaledImprovesRareTiers(t *testing.T) {
	scaling := DefaultScaling()
	base := BuiltinTables()[SourceMobKill]

	scaled, err := scaling.Scaled(base, 20)
	require.NoError(t, err)
	assert.Greater(t, scaled.Uncommon, base.Uncommon)
	assert.Greater(t, scaled.Rare, base.Rare)
	assert.Less(t, scaled.Common, base.Common)
}
