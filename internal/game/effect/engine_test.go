package effect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/rng"
	"github.com/kjohnstone/embervale/internal/scripting"
)

// stubDamager applies damage directly, mimicking the encounter pipeline
// clamp, and records what it was asked to deal.
type stubDamager struct {
	dealt   []int
	sources []string
}

func (d *stubDamager) ApplyDamage(target *actor.Participant, amount int, source string) int {
	if amount <= 0 {
		return 0
	}
	if amount > target.HP {
		amount = target.HP
	}
	target.HP -= amount
	d.dealt = append(d.dealt, amount)
	d.sources = append(d.sources, source)
	return amount
}

func newTestEngine(t *testing.T, src rng.Source) (*Engine, *stubDamager) {
	t.Helper()
	damager := &stubDamager{}
	if src == nil {
		src = rng.NewSeededSource(1)
	}
	return NewEngine(damager, src, nil, zaptest.NewLogger(t)), damager
}

func testEnemy() *actor.Enemy {
	return &actor.Enemy{
		Participant:  actor.Participant{HP: 40, MaxHP: 40},
		Name:         "Skeleton",
		Atk:          3,
		CreatureType: "undead",
		Affinity:     "darkness",
		Rarity:       catalog.RarityCommon,
		Kind:         actor.KindMob,
	}
}

func TestApplyHeal(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")
	p.HP = 5

	res := e.Apply("heal", 4, p, nil, 0)
	require.True(t, res.OK)
	assert.Equal(t, "healed 4 HP", res.Text)
	assert.Equal(t, 9, p.HP)

	p.HP = p.MaxHP
	res = e.Apply("heal", 4, p, nil, 0)
	assert.Equal(t, "already at full health", res.Text)
}

func TestApplyUnknownEffect(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")

	res := e.Apply("chrono_blast", 5, p, nil, 0)
	assert.False(t, res.OK)
	assert.Equal(t, "Unknown effect: chrono_blast", res.Text)
}

func TestApplyHandlerFailure(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")

	res := e.Apply("resurrect", 0, p, nil, 0)
	assert.False(t, res.OK)
	assert.Equal(t, "Effect resurrect failed: magnitude must be positive", res.Text)
}

func TestApplyRecoversFromPanic(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	// Nil player makes the handler dereference nil; the recover guard
	// must turn that into a failure result.
	res := e.Apply("heal", 5, nil, nil, 0)
	assert.False(t, res.OK)
	assert.Contains(t, res.Text, "Effect heal failed:")
}

// A fire vulnerability boosts 10 to 15; fire resistance 5 then reduces
// to 10, flat, floored at 1.
func TestFireDamageVulnerabilityAndResist(t *testing.T) {
	tests := []struct {
		name       string
		vulnerable bool
		resist     int
		wantDealt  int
		wantText   string
	}{
		{name: "plain", wantDealt: 10, wantText: "fire damage: 10"},
		{name: "vulnerable", vulnerable: true, wantDealt: 15, wantText: "fire damage: 15 (effective vs undead!)"},
		{name: "vulnerable and resistant", vulnerable: true, resist: 5, wantDealt: 10, wantText: "fire damage: 10 (effective vs undead!)"},
		{name: "resist floors at one", resist: 99, wantDealt: 1, wantText: "fire damage: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, damager := newTestEngine(t, nil)
			p := actor.NewPlayer("#chan", "ada", "Village")
			enemy := testEnemy()
			if tt.vulnerable {
				enemy.Vulnerabilities = []string{"fire"}
			}
			enemy.FireResist = tt.resist

			res := e.Apply("fire_damage", 10, p, enemy, 0)
			require.True(t, res.OK)
			assert.Equal(t, tt.wantText, res.Text)
			require.Len(t, damager.dealt, 1)
			assert.Equal(t, tt.wantDealt, damager.dealt[0])
			assert.Equal(t, "fire", damager.sources[0])
		})
	}
}

func TestFireDamageSpellPowerBonus(t *testing.T) {
	e, damager := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")
	p.Class = actor.ClassMage
	p.Level = 6 // mage passive gives spell power 6, half of it feeds fire

	res := e.Apply("fire_damage", 10, p, testEnemy(), 0)
	require.True(t, res.OK)
	assert.Equal(t, "fire damage: 13 (+3 spell power)", res.Text)
	assert.Equal(t, []int{13}, damager.dealt)
}

func TestFireDamageOutOfCombatFlavor(t *testing.T) {
	e, damager := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")

	res := e.Apply("fire_damage", 4, p, nil, 0)
	require.True(t, res.OK)
	assert.Equal(t, "fire energy courses through you (+4 fire power)", res.Text)
	assert.Empty(t, damager.dealt)
}

func TestDivineDamageVsDemon(t *testing.T) {
	e, damager := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")
	enemy := testEnemy()
	enemy.CreatureType = "demon"
	enemy.Affinity = "void"

	// 10 * 1.5 (demon) = 15, then * 1.3 (void affinity) = 19.
	res := e.Apply("divine_damage", 10, p, enemy, 0)
	require.True(t, res.OK)
	assert.Equal(t, "divine wrath: 19 (devastating vs evil!)", res.Text)
	assert.Equal(t, []int{19}, damager.dealt)
}

func TestUndeadDamage(t *testing.T) {
	e, damager := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")

	res := e.Apply("undead_damage", 6, p, testEnemy(), 0)
	require.True(t, res.OK)
	assert.Equal(t, "UNDEAD SLAYING: 12 bonus damage (devastating vs undead!)", res.Text)
	assert.Equal(t, []int{12}, damager.dealt)

	beast := testEnemy()
	beast.CreatureType = "beast"
	res = e.Apply("undead_damage", 6, p, beast, 0)
	assert.Equal(t, "weapon glows but has no effect vs beast", res.Text)
}

func TestIceDamageFreezeRoll(t *testing.T) {
	// Forced low roll lands inside the 30% freeze chance.
	e, _ := newTestEngine(t, rng.NewFixedSource(0, 0.1))
	p := actor.NewPlayer("#chan", "ada", "Village")
	enemy := testEnemy()

	res := e.Apply("ice_damage", 5, p, enemy, 0)
	require.True(t, res.OK)
	assert.Equal(t, 1, enemy.Status("frozen"))

	// High roll never freezes.
	e, _ = newTestEngine(t, rng.NewFixedSource(0, 0.9))
	enemy = testEnemy()
	e.Apply("ice_damage", 5, p, enemy, 0)
	assert.Zero(t, enemy.Status("frozen"))
}

func TestBleedStacksDuration(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")
	enemy := testEnemy()

	res := e.Apply("bleed", 2, p, enemy, 0)
	assert.Equal(t, "enemy bleeding for 2 damage over 3 turns", res.Text)
	assert.Equal(t, 3, enemy.Status("bleed"))

	e.Apply("bleed", 2, p, enemy, 4)
	assert.Equal(t, 7, enemy.Status("bleed"))
}

func TestDamageBuffKeepsStrongest(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")

	e.Apply("damage_buff", 5, p, nil, 4)
	e.Apply("damage_buff", 3, p, nil, 9)
	assert.Equal(t, 5, p.Mods.TempDamageBuff)
	assert.Equal(t, 9, p.Mods.TempDamageTurns)
}

func TestAscend(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")
	p.HP = 3

	res := e.Apply("ascend", 1, p, nil, 0)
	require.True(t, res.OK)
	assert.True(t, p.Mods.Ascended)
	assert.Equal(t, actor.BaseMaxHP+1000, p.MaxHP)
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestApplyItemRunsEveryEffect(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	p := actor.NewPlayer("#chan", "ada", "Village")
	p.HP = 1

	results := e.ApplyItem([]ItemEffect{
		{Name: "heal", Magnitude: 5},
		{Name: "damage", Magnitude: 2},
	}, p, nil)
	require.Len(t, results, 2)
	assert.Equal(t, "healed 5 HP", results[0].Text)
	assert.Equal(t, "damage increased by 2", results[1].Text)
	assert.Equal(t, 2, p.Mods.DamageBonus)
}

func TestScriptedEffectFallback(t *testing.T) {
	dir := t.TempDir()
	script := `
		effects.register("spirit_mend", function(ctx)
			return "mended " .. ctx.heal(ctx.magnitude + ctx.level) .. " HP"
		end)
	`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mend.lua"), []byte(script), 0o644))

	lib := scripting.NewEffectLibrary(zaptest.NewLogger(t))
	require.NoError(t, lib.LoadDir(dir, 0))
	defer lib.Close()

	e := NewEngine(&stubDamager{}, rng.NewSeededSource(1), lib, zaptest.NewLogger(t))
	p := actor.NewPlayer("#chan", "ada", "Village")
	p.MaxHP = 30
	p.HP = 10

	require.True(t, e.Known("spirit_mend"))
	res := e.Apply("spirit_mend", 3, p, nil, 0)
	require.True(t, res.OK)
	assert.Equal(t, "mended 4 HP", res.Text)
	assert.Equal(t, 14, p.HP)
}

func TestEquipPassiveWhitelist(t *testing.T) {
	assert.True(t, IsEquipPassive("damage"))
	assert.True(t, IsEquipPassive("fire_damage"))
	assert.True(t, IsEquipPassive("true_strike"))
	assert.False(t, IsEquipPassive("heal"))
	assert.False(t, IsEquipPassive("resurrect"))
	assert.False(t, IsEquipPassive("level_bonus"))
}

func TestDefaultCatalogEffectsAllKnown(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	for _, rarity := range catalog.Rarities() {
		for _, item := range catalog.Default().ItemsByRarity(rarity) {
			for _, eff := range item.Effects {
				assert.Truef(t, e.Known(eff.Name), "item %s carries unknown effect %s", item.Name, eff.Name)
			}
		}
	}
}
