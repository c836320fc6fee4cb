package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/event"
	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/catalog"
)

// Spawn rarity weights. Mobs skew common; bosses skew toward the middle
// of the table so a boss encounter feels like an event even at low
// rarity.
var mobRarityWeights = map[catalog.Rarity]float64{
	catalog.RarityCommon:    50,
	catalog.RarityUncommon:  25,
	catalog.RarityRare:      18,
	catalog.RarityEpic:      5,
	catalog.RarityLegendary: 1.5,
	catalog.RarityMythic:    0.5,
}

var bossRarityWeights = map[catalog.Rarity]float64{
	catalog.RarityCommon:    25,
	catalog.RarityUncommon:  35,
	catalog.RarityRare:      25,
	catalog.RarityEpic:      12,
	catalog.RarityLegendary: 2.5,
	catalog.RarityMythic:    0.5,
}

// Mob stat multipliers by rarity, applied after level scaling.
var mobRarityMult = map[catalog.Rarity]float64{
	catalog.RarityCommon:    1.0,
	catalog.RarityUncommon:  1.15,
	catalog.RarityRare:      1.35,
	catalog.RarityEpic:      1.6,
	catalog.RarityLegendary: 1.9,
	catalog.RarityMythic:    2.4,
}

var bossRarityMult = map[catalog.Rarity]float64{
	catalog.RarityUncommon:  0.85,
	catalog.RarityRare:      1.0,
	catalog.RarityEpic:      1.35,
	catalog.RarityLegendary: 1.75,
	catalog.RarityMythic:    2.3,
}

// weightedChoice picks a monster from table using per-rarity weights.
// Candidates are walked in rarity order so the draw is deterministic
// for a fixed source.
func (m *Manager) weightedChoice(table []*catalog.Monster, weights map[catalog.Rarity]float64) *catalog.Monster {
	if len(table) == 0 {
		return nil
	}

	byRarity := make(map[catalog.Rarity][]*catalog.Monster)
	for _, mon := range table {
		byRarity[mon.Rarity] = append(byRarity[mon.Rarity], mon)
	}

	type weighted struct {
		monster *catalog.Monster
		weight  float64
	}
	var candidates []weighted
	total := 0.0
	for _, rarity := range catalog.Rarities() {
		w := weights[rarity]
		if w <= 0 {
			continue
		}
		for _, mon := range byRarity[rarity] {
			candidates = append(candidates, weighted{monster: mon, weight: w})
			total += w
		}
	}
	if len(candidates) == 0 {
		return table[m.src.Intn(len(table))]
	}

	r := m.src.Float64() * total
	cum := 0.0
	for _, c := range candidates {
		cum += c.weight
		if r <= cum {
			return c.monster
		}
	}
	return table[m.src.Intn(len(table))]
}

// eligibleMobs returns the mobs that may spawn at location. When no mob
// lists the location, the common-rarity table serves as fallback so
// every area stays huntable.
func (m *Manager) eligibleMobs(location string) []*catalog.Monster {
	var eligible []*catalog.Monster
	for _, mon := range m.catalog.Mobs() {
		if mon.EligibleAt(location) {
			eligible = append(eligible, mon)
		}
	}
	if len(eligible) > 0 {
		return eligible
	}
	for _, mon := range m.catalog.Mobs() {
		if mon.Rarity == catalog.RarityCommon {
			eligible = append(eligible, mon)
		}
	}
	return eligible
}

// eligibleBosses is the boss counterpart; the fallback admits common and
// rare stat blocks.
func (m *Manager) eligibleBosses(location string) []*catalog.Monster {
	var eligible []*catalog.Monster
	for _, mon := range m.catalog.Bosses() {
		if mon.EligibleAt(location) {
			eligible = append(eligible, mon)
		}
	}
	if len(eligible) > 0 {
		return eligible
	}
	for _, mon := range m.catalog.Bosses() {
		if mon.Rarity == catalog.RarityCommon || mon.Rarity == catalog.RarityRare {
			eligible = append(eligible, mon)
		}
	}
	return eligible
}

// makeMob instantiates a mob scaled to the player's level and the stat
// block's rarity.
func makeMob(base *catalog.Monster, playerLevel int) *actor.Enemy {
	lvl := playerLevel
	if lvl < 1 {
		lvl = 1
	}
	hp := base.HP + lvl*3/2
	atk := base.Atk + lvl*4/5
	armor := base.Armor + lvl*3/10

	mult, ok := mobRarityMult[base.Rarity]
	if !ok {
		mult = 1.0
	}
	hp = int(float64(hp) * mult)
	atk = int(float64(atk) * mult)
	armor = int(float64(armor) * mult)

	return newEnemy(base, actor.KindMob, hp, atk, armor)
}

// makeBoss instantiates a boss. Bosses scale harder with level than
// mobs and their rarity multiplier is anchored at rare.
func makeBoss(base *catalog.Monster, playerLevel int) *actor.Enemy {
	lvl := playerLevel
	if lvl < 1 {
		lvl = 1
	}
	hp := base.HP + lvl*4
	atk := base.Atk + lvl*3/2
	armor := base.Armor + lvl/2

	mult, ok := bossRarityMult[base.Rarity]
	if !ok {
		mult = 1.0
	}
	hp = int(float64(hp) * mult)
	atk = int(float64(atk) * mult)
	armor = int(float64(armor) * mult)

	return newEnemy(base, actor.KindBoss, hp, atk, armor)
}

func newEnemy(base *catalog.Monster, kind actor.EnemyKind, hp, atk, armor int) *actor.Enemy {
	return &actor.Enemy{
		Participant:     actor.Participant{HP: hp, MaxHP: hp},
		Name:            base.Name,
		Atk:             atk,
		Armor:           armor,
		Kind:            kind,
		CreatureType:    base.CreatureType,
		Affinity:        base.Affinity,
		Rarity:          base.Rarity,
		Traits:          base.Traits,
		Vulnerabilities: base.Vulnerabilities,
		FireResist:      base.FireResist,
		ColdResist:      base.ColdResist,
		MagicResist:     base.MagicResist,
	}
}

// article returns the indefinite article for a rarity name.
func article(rarity catalog.Rarity) string {
	s := string(rarity)
	if s == "" {
		return "A"
	}
	switch s[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "An"
	}
	return "A"
}

// spawnMob starts a mob encounter and returns the spawn announcement.
//
// Precondition: the player must not be in combat; callers guard first.
func (m *Manager) spawnMob(p *actor.Player) string {
	base := m.weightedChoice(m.eligibleMobs(p.Location), mobRarityWeights)
	if base == nil {
		return "the area is eerily quiet. Nothing to hunt here."
	}
	enemy := makeMob(base, p.Level)
	p.SkillCD = 0
	if _, err := m.registry.Begin(p, enemy); err != nil {
		m.logger.Error("mob spawn rejected", zap.String("player", p.Key()), zap.Error(err))
		return "already in combat."
	}

	rarity := strings.ToUpper(string(enemy.Rarity))
	var msg string
	switch enemy.Rarity {
	case catalog.RarityEpic, catalog.RarityLegendary, catalog.RarityMythic:
		msg = fmt.Sprintf("%s %s %s (%s, %s affinity) appears in %s! HP %d. Choose: %%fight | %%skill | %%run",
			article(enemy.Rarity), rarity, enemy.Name, enemy.CreatureType, enemy.Affinity, p.Location, enemy.HP)
	default:
		msg = fmt.Sprintf("A %s %s (%s) appears in %s! HP %d. Choose: %%fight | %%skill | %%run",
			rarity, enemy.Name, enemy.CreatureType, p.Location, enemy.HP)
	}

	m.emitter.Emit(event.Event{
		Type:    event.TypeSpawn,
		Channel: p.Channel,
		Player:  p.Name,
		Message: msg,
		Rarity:  string(enemy.Rarity),
	})
	return msg
}

// spawnBoss starts a boss encounter and returns the spawn announcement.
func (m *Manager) spawnBoss(p *actor.Player) string {
	base := m.weightedChoice(m.eligibleBosses(p.Location), bossRarityWeights)
	if base == nil {
		return "the area is eerily quiet. Nothing to hunt here."
	}
	enemy := makeBoss(base, p.Level)
	p.SkillCD = 0
	if _, err := m.registry.Begin(p, enemy); err != nil {
		m.logger.Error("boss spawn rejected", zap.String("player", p.Key()), zap.Error(err))
		return "already in combat."
	}

	msg := fmt.Sprintf("%s %s BOSS %s (%s, %s affinity) appears in %s! HP %d. Choose: %%fight | %%skill | %%run",
		article(enemy.Rarity), strings.ToUpper(string(enemy.Rarity)), enemy.Name,
		enemy.CreatureType, enemy.Affinity, p.Location, enemy.HP)

	m.emitter.Emit(event.Event{
		Type:    event.TypeSpawn,
		Channel: p.Channel,
		Player:  p.Name,
		Message: msg,
		Rarity:  string(enemy.Rarity),
	})
	return msg
}
