package turn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

func TestEnemyTurnBasicHit(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Equal(t, "The Forest Wolf hits you for 2.", msg)
	assert.Equal(t, actor.BaseMaxHP-2, p.HP)
}

func TestEnemyTurnRogueDodge(t *testing.T) {
	p := testPlayer()
	p.Class = actor.ClassRogue
	mob := testMob()
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.1), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Equal(t, "You dodge the attack!", msg)
	assert.Equal(t, actor.BaseMaxHP, p.HP)
}

func TestEnemyTurnBleedTickAndExpiry(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.SetStatus("bleed", 1)
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	// The expiry line lands before the tick line.
	wearsOff := strings.Index(msg, "Bleeding wears off.")
	tick := strings.Index(msg, "It bleeds for 2 damage.")
	require.GreaterOrEqual(t, wearsOff, 0, "msg %q", msg)
	require.Greater(t, tick, wearsOff, "msg %q", msg)
	assert.Equal(t, 8, mob.HP)
	assert.Zero(t, mob.Status("bleed"))
	// Enemy still acts afterwards.
	assert.Contains(t, msg, "hits you for")
}

func TestEnemyTurnDotKillStopsTurn(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.HP = 2
	mob.SetStatus("burn", 3)
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	assert.True(t, enc.Resolved)
	assert.True(t, enc.Rewarded)
	assert.Contains(t, msg, "It burns for 3 damage.")
	assert.NotContains(t, msg, "hits you")
	assert.Equal(t, actor.BaseMaxHP, p.HP)
}

func TestEnemyTurnStunnedSkipsAction(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.SetStatus("stunned", 2)
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Equal(t, "It is stunned and cannot act.", msg)
	assert.Equal(t, actor.BaseMaxHP, p.HP)
	assert.Equal(t, 1, mob.Status("stunned"))
}

func TestEnemyTurnFrozenSkipsAction(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.SetStatus("frozen", 1)
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Equal(t, "Frozen state ends. It is frozen solid.", msg)
	assert.Equal(t, actor.BaseMaxHP, p.HP)
}

func TestEnemyTurnRegenTrait(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.HP = 5
	mob.Traits = []string{"regen"}
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Contains(t, msg, "It regenerates 1 HP.")
	assert.Equal(t, 6, mob.HP)
}

func TestEnemyTurnIntimidatingReducesDamage(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.Traits = []string{"fear"}
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.1), p, mob)

	msg := r.EnemyTurn(enc)

	// Level 1 common: 26% reduction turns a 2 hit into 1.
	assert.Contains(t, msg, "You're intimidated by the common Forest Wolf! Damage reduced to 1.")
	assert.Equal(t, actor.BaseMaxHP-1, p.HP)
}

func TestEnemyTurnIntimidatingRoar(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.Traits = []string{"fear"}
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.5), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Contains(t, msg, "The Forest Wolf hits you for 2 with a terrifying roar!")
	assert.Equal(t, actor.BaseMaxHP-2, p.HP)
}

func TestEnemyTurnInflictsPoison(t *testing.T) {
	p := testPlayer()
	mob := testMob()
	mob.Traits = []string{"venomous"}
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.1), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Contains(t, msg, "You feel 1-potent poison coursing through your veins!")
	assert.Equal(t, 2, p.Status("poison"))
}

func TestEnemyTurnBossEnrages(t *testing.T) {
	p := testPlayer()
	p.MaxHP, p.HP = 30, 30
	boss := testBoss()
	boss.HP = 9
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, boss)

	msg := r.EnemyTurn(enc)

	assert.True(t, boss.Enraged)
	assert.Contains(t, msg, "It becomes ENRAGED! (+50% attack)")
	// Enraged attack: 5 * 1.5 = 7.
	assert.Contains(t, msg, "The Bridge Troll hits you for 7.")
	assert.Equal(t, 23, p.HP)
	assert.Equal(t, 1, boss.SpecialCD)
}

func TestEnemyTurnBossSpecialEveryThirdRound(t *testing.T) {
	p := testPlayer()
	p.MaxHP, p.HP = 30, 30
	boss := testBoss()
	boss.SpecialCD = 2
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, boss)

	msg := r.EnemyTurn(enc)

	// Fixed roll picks smash: 5 + 2.
	assert.Contains(t, msg, "The Bridge Troll unleashes a crushing smash for 7!")
	assert.Equal(t, 0, boss.SpecialCD)
	// Regular hit 5 plus smash 7.
	assert.Equal(t, 18, p.HP)
}

func TestBossSpecialRoar(t *testing.T) {
	p := testPlayer()
	boss := testBoss()
	r, enc := newCombat(t, rng.NewFixedSource(1, 0.9), p, boss)

	msg := r.bossSpecial(enc)

	assert.Equal(t, "The Bridge Troll roars, its hide hardens (+1 armor).", msg)
	assert.Equal(t, 1, boss.Armor)
}

func TestBossSpecialGuard(t *testing.T) {
	p := testPlayer()
	boss := testBoss()
	boss.HP = 27
	r, enc := newCombat(t, rng.NewFixedSource(2, 0.9), p, boss)

	msg := r.bossSpecial(enc)

	assert.Equal(t, "The Bridge Troll guards, recovers 3 HP and +1 armor.", msg)
	assert.Equal(t, 30, boss.HP)
	assert.Equal(t, 1, boss.Armor)
}

func TestEnemyTurnPlayerDefeatStopsTurn(t *testing.T) {
	p := testPlayer()
	p.HP = 1
	mob := testMob()
	mob.Atk = 99
	mob.Traits = []string{"venomous"}
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.1), p, mob)

	msg := r.EnemyTurn(enc)

	assert.True(t, enc.Resolved)
	assert.False(t, enc.Rewarded)
	assert.NotContains(t, msg, "poison")
	assert.Zero(t, p.HP)
}

func TestEnemyTurnResurrectionNoteSurfaces(t *testing.T) {
	p := testPlayer()
	p.HP = 1
	p.Mods.ResurrectCharges = 1
	mob := testMob()
	mob.Atk = 99
	r, enc := newCombat(t, rng.NewFixedSource(0, 0.9), p, mob)

	msg := r.EnemyTurn(enc)

	assert.Contains(t, msg, "A resurrection charge revives you! (0 left)")
	assert.False(t, enc.Resolved)
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Zero(t, p.Mods.ResurrectCharges)
}
