package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

func TestTurnStartRegen(t *testing.T) {
	p := testPlayer()
	p.HP = 5
	p.Mods.Regen = 3
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "Regenerated 3 HP")
	assert.Equal(t, 8, p.HP)
}

func TestTurnStartInfiniteRegen(t *testing.T) {
	p := testPlayer()
	p.HP = 1
	p.Mods.InfiniteRegen = true
	p.Mods.Regen = 2 // shadowed by infinite regen
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "INFINITE REGEN: Fully healed")
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestTurnStartManaRegen(t *testing.T) {
	p := testPlayer()
	p.Mods.Mana = 48
	p.Mods.ManaRegen = 5
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "Regenerated 2 mana")
	assert.Equal(t, p.Mods.MaxMana, p.Mods.Mana)
}

func TestTurnStartDrainStopsAtOne(t *testing.T) {
	p := testPlayer()
	p.HP = 3
	p.Mods.HPDrainPerTurn = 10
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "Lost 2 HP to dark power")
	assert.Equal(t, 1, p.HP)
	assert.False(t, enc.Resolved)
}

func TestTurnStartTempEffectExpiry(t *testing.T) {
	p := testPlayer()
	p.Mods.TempDamageBuff = 4
	p.Mods.TempDamageTurns = 1
	p.Mods.TempArmorDebuff = 2
	p.Mods.TempArmorDebuffTurns = 1
	p.Mods.StealthTurns = 1
	p.Mods.ImmortalTurns = 1
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "Damage buff expired")
	assert.Contains(t, msgs, "Armor penalty expired")
	assert.Contains(t, msgs, "Stealth wears off")
	assert.Contains(t, msgs, "Immortality expires")
	assert.Zero(t, p.Mods.TempDamageBuff)
	assert.Zero(t, p.Mods.TempArmorDebuff)
}

func TestTurnStartCountdownsNotYetExpired(t *testing.T) {
	p := testPlayer()
	p.Mods.TempDamageBuff = 4
	p.Mods.TempDamageTurns = 3
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Empty(t, msgs)
	assert.Equal(t, 4, p.Mods.TempDamageBuff)
	assert.Equal(t, 2, p.Mods.TempDamageTurns)
}

func TestTurnStartPlayerBleedTicks(t *testing.T) {
	p := testPlayer()
	p.AddStatus("bleed", 1)
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "You bleed for 2 damage.")
	assert.Contains(t, msgs, "Your bleeding stops.")
	assert.Equal(t, actor.BaseMaxHP-2, p.HP)
	assert.Zero(t, p.Status("bleed"))
}

func TestTurnStartPlayerPoisonCanDefeat(t *testing.T) {
	p := testPlayer()
	p.HP = 2
	p.AddStatus("poison", 3)
	r, enc := newCombat(t, nil, p, testMob())

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "You take 2 poison damage.")
	assert.True(t, enc.Resolved)
	assert.False(t, enc.Rewarded)
}

func TestTurnStartSummonedAlly(t *testing.T) {
	p := testPlayer()
	p.Mods.SummonedAlly = &actor.Ally{HP: 1, Damage: 4}
	mob := testMob()
	r, enc := newCombat(t, nil, p, mob)

	msgs := r.TurnStart(enc)

	assert.Contains(t, msgs, "Spirit ally attacks for 4 damage")
	assert.Contains(t, msgs, "Spirit ally fades away")
	assert.Nil(t, p.Mods.SummonedAlly)
	assert.Equal(t, 6, mob.HP)
	assert.False(t, enc.Resolved)
}

func TestTurnStartAllyCanFinishEnemy(t *testing.T) {
	p := testPlayer()
	p.Mods.SummonedAlly = &actor.Ally{HP: 3, Damage: 4}
	mob := testMob()
	mob.HP = 3
	r, enc := newCombat(t, rng.NewSeededSource(11), p, mob)

	r.TurnStart(enc)

	assert.True(t, enc.Resolved)
	assert.True(t, enc.Rewarded)
}

func TestExtraTurnReady(t *testing.T) {
	p := testPlayer()
	assert.False(t, ExtraTurnReady(p))

	p.Mods.ExtraTurns = 2
	assert.True(t, ExtraTurnReady(p))
	assert.True(t, ExtraTurnReady(p))
	assert.False(t, ExtraTurnReady(p))
	assert.Zero(t, p.Mods.ExtraTurns)
}
