package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Mobs())
	require.NotEmpty(t, c.Bosses())
	require.NotEmpty(t, c.Locations())

	// Every rarity tier must have at least one item so drop rolls can
	// always resolve to a concrete item.
	for _, r := range Rarities() {
		assert.NotEmptyf(t, c.ItemsByRarity(r), "no items of rarity %s", r)
	}
}

func TestItemLookupCaseInsensitive(t *testing.T) {
	c := Default()

	item, ok := c.Item("potion")
	require.True(t, ok)
	assert.Equal(t, "Potion", item.Name)

	item, ok = c.Item("  ENCHANTED DAGGER ")
	require.True(t, ok)
	assert.Equal(t, "Enchanted Dagger", item.Name)

	_, ok = c.Item("No Such Thing")
	assert.False(t, ok)
}

func TestMonsterLocationsReferenceKnownLocations(t *testing.T) {
	c := Default()
	all := append(append([]*Monster(nil), c.Mobs()...), c.Bosses()...)
	for _, m := range all {
		for _, loc := range m.Locations {
			assert.Truef(t, c.HasLocation(loc), "monster %s spawns in unknown location %q", m.Name, loc)
		}
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr string
	}{
		{name: "valid", item: Item{Name: "Thing", Rarity: RarityCommon}},
		{name: "empty name", item: Item{Rarity: RarityCommon}, wantErr: "name must not be empty"},
		{name: "bad rarity", item: Item{Name: "Thing", Rarity: "shiny"}, wantErr: "unknown rarity"},
		{name: "negative value", item: Item{Name: "Thing", Rarity: RarityCommon, Value: -1}, wantErr: "value must be >= 0"},
		{
			name:    "unnamed effect",
			item:    Item{Name: "Thing", Rarity: RarityCommon, Effects: []ItemEffect{{Magnitude: 1}}},
			wantErr: "non-empty name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRarityOrdering(t *testing.T) {
	assert.True(t, RarityMythic.AtLeast(RarityEpic))
	assert.True(t, RarityEpic.AtLeast(RarityEpic))
	assert.False(t, RarityCommon.AtLeast(RarityUncommon))
	assert.Equal(t, 0, Rarity("bogus").Rank())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	content := `
items:
  - name: Test Potion
    type: consumable
    slot: consumable
    rarity: common
    description: test
    effects:
      - name: heal
        magnitude: 5
    value: 3
    stackable: true
    usable: true
monsters:
  - name: Test Rat
    kind: mob
    hp: 5
    atk: 1
    armor: 0
    creature_type: beast
    affinity: neutral
    rarity: common
    locations: [Test Field]
  - name: Test Troll
    kind: boss
    hp: 30
    atk: 5
    armor: 2
    creature_type: giant
    affinity: earth
    rarity: rare
    locations: [Test Field]
locations:
  - Test Field
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content.yaml"), []byte(content), 0o644))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	_, ok := c.Item("Test Potion")
	assert.True(t, ok)
	assert.Len(t, c.Mobs(), 1)
	assert.Len(t, c.Bosses(), 1)
}

func TestLoadDirRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	bad := `
items:
  - name: Thing
    rarity: common
    damage: 5
monsters: []
locations: [Somewhere]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644))

	_, err := LoadDir(dir)
	require.Error(t, err)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog files")
}
