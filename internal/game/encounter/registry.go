package encounter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/event"
	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/drop"
	"github.com/kjohnstone/embervale/internal/game/rng"
)

// SpoilsMessage announces a victory that was resolved lazily, after the
// killing blow already granted rewards.
const SpoilsMessage = "Foe down — you claim your spoils!"

// Victory reward ranges.
const (
	mobGoldMin, mobGoldMax   = 2, 7
	mobXPMin, mobXPMax       = 4, 8
	bossGoldMin, bossGoldMax = 8, 16
	bossXPMin, bossXPMax     = 10, 16
)

// Registry tracks every active encounter and implements the damage
// pipeline. Safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	byID     map[string]*Encounter
	byPlayer map[string]string

	drops   *drop.Engine
	src     rng.Source
	emitter event.Emitter
	logger  *zap.Logger
}

// NewRegistry creates an empty registry.
//
// Precondition: drops, src, emitter, and logger must be non-nil.
func NewRegistry(drops *drop.Engine, src rng.Source, emitter event.Emitter, logger *zap.Logger) *Registry {
	return &Registry{
		byID:     make(map[string]*Encounter),
		byPlayer: make(map[string]string),
		drops:    drops,
		src:      src,
		emitter:  emitter,
		logger:   logger,
	}
}

// Begin starts a new encounter between player and enemy.
//
// Precondition: the player must not already be in an encounter.
// Postcondition: both participants are bound to the encounter and the
// player is flagged in combat.
func (r *Registry) Begin(p *actor.Player, enemy *actor.Enemy) (*Encounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byPlayer[p.Key()]; ok {
		return nil, fmt.Errorf("encounter: player %s already in encounter %s", p.Key(), id)
	}

	enc := &Encounter{
		ID:     uuid.NewString(),
		Player: p,
		Enemy:  enemy,
		Round:  1,
	}
	p.EncounterID = enc.ID
	p.InCombat = true
	p.CombatEnemy = enemy
	enemy.EncounterID = enc.ID

	r.byID[enc.ID] = enc
	r.byPlayer[p.Key()] = enc.ID

	r.logger.Debug("encounter started",
		zap.String("encounter", enc.ID),
		zap.String("player", p.Key()),
		zap.String("enemy", enemy.Name),
	)
	return enc, nil
}

// Lookup returns the encounter with the given ID, nil if unknown.
func (r *Registry) Lookup(id string) *Encounter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id]
}

// ForPlayer returns the player's active encounter, nil if none.
func (r *Registry) ForPlayer(playerKey string) *Encounter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[r.byPlayer[playerKey]]
}

// ApplyDamage is the single entry point for removing HP from any combat
// participant. A kill resolves the encounter immediately: enemy deaths
// grant rewards exactly once, player deaths end the fight and leave the
// defeat flow to the session layer. Returns the damage actually dealt.
//
// Precondition: target must be a Participant embedded in a Player or
// Enemy; amounts <= 0 deal nothing.
func (r *Registry) ApplyDamage(target *actor.Participant, amount int, source string) int {
	if amount <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	before := target.HP
	target.HP = before - amount
	if target.HP < 0 {
		target.HP = 0
	}
	dealt := before - target.HP

	if target.HP > 0 {
		return dealt
	}

	enc := r.byID[target.EncounterID]
	if enc == nil || enc.Resolved {
		return dealt
	}

	switch target {
	case &enc.Enemy.Participant:
		r.rewardLocked(enc, source)
		r.endLocked(enc)
	case &enc.Player.Participant:
		// A death-prevention power keeps the fight going.
		if msg, survived := enc.Player.PreventDeath(); survived {
			enc.Notes = append(enc.Notes, msg)
			return dealt
		}
		enc.Log = append(enc.Log, "Player defeated.")
		r.endLocked(enc)
	}
	return dealt
}

// AutoresolveVictory grants rewards and ends the encounter if the enemy
// is already dead. The second return reports whether a victory was
// resolved. Safe to call from any command handler.
func (r *Registry) AutoresolveVictory(p *actor.Player, source string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := r.byID[r.byPlayer[p.Key()]]
	if enc == nil || !enc.EnemyDown() {
		return "", false
	}
	if source == "" {
		source = "autovictory"
	}

	alreadyRewarded := enc.Rewarded
	msg := r.rewardLocked(enc, source)
	r.endLocked(enc)

	if !alreadyRewarded && msg != "" {
		return msg, true
	}
	return SpoilsMessage, true
}

// RunGuard resolves a stale victory before a flee attempt. Returns the
// spoils line and true when the foe was already down.
func (r *Registry) RunGuard(p *actor.Player, tag string) (string, bool) {
	msg, ok := r.AutoresolveVictory(p, "run_guard")
	if !ok {
		return "", false
	}
	if tag != "" {
		msg = tag + " " + msg
	}
	return msg, true
}

// ExploreGuard gates exploration on combat state. The second return
// reports whether exploration may proceed; when blocked, the first
// return carries the refusal line.
func (r *Registry) ExploreGuard(p *actor.Player, tag string) (string, bool) {
	enc := r.ForPlayer(p.Key())
	if enc == nil {
		return "", true
	}
	if enc.EnemyDown() {
		msg, _ := r.AutoresolveVictory(p, "explore_guard")
		return msg, true
	}
	refusal := "in combat! Use %fight/%skill/%run."
	if tag != "" {
		refusal = tag + " " + refusal
	}
	return refusal, false
}

// Abandon ends the player's encounter without rewards. Used by flee and
// defeat flows.
func (r *Registry) Abandon(p *actor.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if enc := r.byID[r.byPlayer[p.Key()]]; enc != nil {
		r.endLocked(enc)
	}
}

// Restore rebinds a loaded player to an encounter from its persisted
// combat snapshot. Stale fights against an already-dead enemy resolve
// immediately; the returned message carries any spoils line.
func (r *Registry) Restore(p *actor.Player) string {
	if p.CombatEnemy == nil {
		p.InCombat = false
		p.EncounterID = ""
		return ""
	}

	p.EncounterID = ""
	p.CombatEnemy.EncounterID = ""
	if _, err := r.Begin(p, p.CombatEnemy); err != nil {
		r.logger.Warn("encounter restore failed",
			zap.String("player", p.Key()),
			zap.Error(err),
		)
		return ""
	}
	if p.CombatEnemy.HP <= 0 {
		msg, _ := r.AutoresolveVictory(p, "load_recovery")
		return msg
	}
	return ""
}

// rewardLocked grants victory rewards once and returns the narration.
// Caller holds the mutex.
func (r *Registry) rewardLocked(enc *Encounter, source string) string {
	if enc.Rewarded {
		return ""
	}
	enc.Rewarded = true

	var msg string
	if enc.Enemy.Kind == actor.KindBoss {
		msg = r.bossVictoryLocked(enc)
	} else {
		msg = r.mobVictoryLocked(enc)
	}
	enc.Spoils = msg
	if source == "" {
		source = "damage"
	}
	enc.Log = append(enc.Log, fmt.Sprintf("%s (source: %s)", msg, source))

	r.emitter.Emit(event.Event{
		Type:    event.TypeVictory,
		Channel: enc.Player.Channel,
		Player:  enc.Player.Key(),
		Message: msg,
	})
	return msg
}

// bossVictoryLocked rolls boss rewards: gold, XP, one guaranteed drop,
// and up to two bonus drops that skip duplicates.
func (r *Registry) bossVictoryLocked(enc *Encounter) string {
	p := enc.Player
	gold := rng.IntBetween(r.src, bossGoldMin, bossGoldMax)
	xp := rng.IntBetween(r.src, bossXPMin, bossXPMax)
	p.Gold += gold

	var drops []*catalog.Item
	exclude := make(map[string]bool)
	grant := func(item *catalog.Item) {
		p.AddItem(item.Name)
		drops = append(drops, item)
		exclude[item.Name] = true
		r.emitDrop(p, item)
	}

	if item := r.drops.Roll(drop.SourceBossKill, p.Level, nil); item != nil {
		grant(item)
	}
	if rng.Chance(r.src, drop.BossMultiDropChance) {
		if item := r.drops.Roll(drop.SourceBossKill, p.Level, exclude); item != nil {
			grant(item)
		}
	}
	if rng.Chance(r.src, drop.BossRareMultiDropChance) {
		if item := r.drops.Roll(drop.SourceBossKill, p.Level, exclude); item != nil {
			grant(item)
		}
	}

	xpMsg := r.grantXP(p, xp)
	if len(drops) == 0 {
		return fmt.Sprintf("Boss defeated! +%dg, %s.", gold, xpMsg)
	}
	names := make([]string, len(drops))
	for i, item := range drops {
		names[i] = item.Name
	}
	var dropMsg string
	switch len(names) {
	case 1:
		dropMsg = "found " + names[0]
	case 2:
		dropMsg = "found " + names[0] + " and " + names[1]
	default:
		dropMsg = "found " + strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
	return fmt.Sprintf("Boss defeated! +%dg, %s, %s.", gold, dropMsg, xpMsg)
}

// mobVictoryLocked rolls regular kill rewards: gold, XP, and at most
// one drop.
func (r *Registry) mobVictoryLocked(enc *Encounter) string {
	p := enc.Player
	gold := rng.IntBetween(r.src, mobGoldMin, mobGoldMax)
	xp := rng.IntBetween(r.src, mobXPMin, mobXPMax)
	p.Gold += gold

	item := r.drops.Roll(drop.SourceMobKill, p.Level, nil)
	if item != nil {
		p.AddItem(item.Name)
		r.emitDrop(p, item)
	}

	xpMsg := r.grantXP(p, xp)
	if item != nil {
		return fmt.Sprintf("Foe defeated! +%dg, found a %s, %s.", gold, item.Name, xpMsg)
	}
	return fmt.Sprintf("Foe defeated! +%dg, %s.", gold, xpMsg)
}

func (r *Registry) grantXP(p *actor.Player, xp int) string {
	msg, levels := p.GrantXP(xp)
	if levels > 0 {
		r.emitter.Emit(event.Event{
			Type:    event.TypeLevelUp,
			Channel: p.Channel,
			Player:  p.Key(),
			Message: msg,
			XP:      xp,
		})
	}
	return msg
}

func (r *Registry) emitDrop(p *actor.Player, item *catalog.Item) {
	r.emitter.Emit(event.Event{
		Type:    event.TypeDrop,
		Channel: p.Channel,
		Player:  p.Key(),
		Message: "found " + item.Name,
		Item:    item.Name,
		Rarity:  string(item.Rarity),
	})
}

// endLocked clears combat state and unregisters the encounter. Caller
// holds the mutex.
func (r *Registry) endLocked(enc *Encounter) {
	enc.Resolved = true
	enc.Player.InCombat = false
	enc.Player.EncounterID = ""
	enc.Player.CombatEnemy = nil
	enc.Enemy.EncounterID = ""

	delete(r.byPlayer, enc.Player.Key())
	delete(r.byID, enc.ID)

	r.logger.Debug("encounter ended",
		zap.String("encounter", enc.ID),
		zap.String("player", enc.Player.Key()),
		zap.Bool("rewarded", enc.Rewarded),
	)
}
