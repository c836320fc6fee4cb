// Package session owns the live player roster and drives the chat
// commands end to end: character lifecycle, spawning, combat rounds,
// exploration, and persistence coordination. Memory is authoritative;
// storage failures are logged and play continues.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/event"
	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/drop"
	"github.com/kjohnstone/embervale/internal/game/encounter"
	"github.com/kjohnstone/embervale/internal/game/inventory"
	"github.com/kjohnstone/embervale/internal/game/rng"
	"github.com/kjohnstone/embervale/internal/game/turn"
)

// Saver persists the full roster snapshot.
type Saver interface {
	Save(ctx context.Context, players map[string]*actor.Player) error
}

// Config carries the balance knobs of the session layer.
type Config struct {
	// Hardcore deletes the character on defeat instead of applying the
	// gold penalty.
	Hardcore bool
	// BossEncounterRate is the chance an exploration turns into a boss
	// fight.
	BossEncounterRate float64
	// RunSuccessMob and RunSuccessBoss are the base flee chances.
	RunSuccessMob  float64
	RunSuccessBoss float64
	// RogueRunBonus is added to the flee chance for rogues.
	RogueRunBonus float64
}

// DefaultConfig returns the production balance values.
func DefaultConfig() Config {
	return Config{
		BossEncounterRate: 0.10,
		RunSuccessMob:     0.6,
		RunSuccessBoss:    0.45,
		RogueRunBonus:     0.15,
	}
}

// classInfo describes a selectable class for the class command.
type classInfo struct {
	HPBonus   int
	Passive   string
	SkillName string
}

var classes = map[actor.Class]classInfo{
	actor.ClassWarrior: {HPBonus: 4, Passive: "Toughness (+1 max HP per level)", SkillName: "Power Strike"},
	actor.ClassMage:    {HPBonus: 0, Passive: "Arcane Mind (+1 spell power per level, boosts all magic effects)", SkillName: "Fire Bolt"},
	actor.ClassRogue:   {HPBonus: 2, Passive: "Evasion (20% dodge chance)", SkillName: "Backstab"},
}

// Manager is the session layer: one instance per process, safe for
// concurrent use. All command methods return a chat line addressed to
// the acting player; the transport adds the @mention.
type Manager struct {
	mu      sync.RWMutex
	players map[string]*actor.Player

	cfg      Config
	catalog  *catalog.Catalog
	drops    *drop.Engine
	registry *encounter.Registry
	resolver *turn.Resolver
	bag      *inventory.Manager
	saver    Saver
	src      rng.Source
	emitter  event.Emitter
	logger   *zap.Logger
}

// NewManager creates a session manager with an empty roster.
//
// Precondition: every dependency except saver must be non-nil. A nil
// saver disables persistence (used by tests and the simulator).
func NewManager(cfg Config, cat *catalog.Catalog, drops *drop.Engine, registry *encounter.Registry,
	resolver *turn.Resolver, bag *inventory.Manager, saver Saver, src rng.Source,
	emitter event.Emitter, logger *zap.Logger) *Manager {
	return &Manager{
		players:  make(map[string]*actor.Player),
		cfg:      cfg,
		catalog:  cat,
		drops:    drops,
		registry: registry,
		resolver: resolver,
		bag:      bag,
		saver:    saver,
		src:      src,
		emitter:  emitter,
		logger:   logger,
	}
}

// Start creates a new character for the chatter.
func (m *Manager) Start(channel, username string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := actor.Key(channel, username)
	if _, ok := m.players[key]; ok {
		return "you already have a save. Use %stats or %explore."
	}

	locations := m.catalog.Locations()
	location := locations[m.src.Intn(len(locations))]
	p := actor.NewPlayer(channel, username, location)
	m.players[key] = p

	m.logger.Info("new character",
		zap.String("player", key),
		zap.String("location", location),
	)
	return fmt.Sprintf("begins at %s (Lvl %d, HP %d/%d). Pick a class with %%class warrior|mage|rogue or review them with %%classes",
		p.Location, p.Level, p.HP, p.MaxHP)
}

// ChooseClass assigns the player's class, once.
func (m *Manager) ChooseClass(channel, username, chosen string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}
	if p.Class != actor.ClassNone {
		return fmt.Sprintf("you already chose %s.", p.Class)
	}

	class := actor.Class(strings.ToLower(strings.TrimSpace(chosen)))
	info, ok := classes[class]
	if !ok {
		return "choose one: warrior, mage, rogue. Use %classes for details."
	}

	p.Class = class
	p.MaxHP += info.HPBonus
	p.HP = p.MaxHP

	m.persist()
	name := string(class)
	name = strings.ToUpper(name[:1]) + name[1:]
	return fmt.Sprintf("is now a %s! Passive: %s | Skill: %s. HP %d.",
		name, info.Passive, info.SkillName, p.HP)
}

// Stats formats the player's character sheet.
func (m *Manager) Stats(channel, username string) string {
	p, resp, ok := m.playerFor(channel, username)
	if !ok {
		return resp
	}

	class := "unassigned"
	if p.Class != actor.ClassNone {
		class = string(p.Class)
	}

	equipped := p.EquippedItems()
	equippedText := "none equipped"
	if len(equipped) > 0 {
		equippedText = fmt.Sprintf("%d equipped", len(equipped))
	}

	combatInfo := ""
	if enc := m.registry.ForPlayer(p.Key()); enc != nil {
		combatInfo = fmt.Sprintf(" | In Combat vs %s (%d/%d)", enc.Enemy.Name, enc.Enemy.HP, enc.Enemy.MaxHP)
	}

	return fmt.Sprintf("Lvl %d (%d/%d XP) | Class: %s | HP %d/%d | Gold %d | Bag: %s | Equipped: %s%s",
		p.Level, p.XP, p.XPToNext, class, p.HP, p.MaxHP, p.Gold, m.bag.Display(p), equippedText, combatInfo)
}

// Lookup returns the player for a chatter, if one exists.
func (m *Manager) Lookup(channel, username string) (*actor.Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[actor.Key(channel, username)]
	return p, ok
}

// Remove deletes a character. Used by hardcore defeats and moderation.
func (m *Manager) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.players, key)
}

// Snapshot returns a copy of the roster map for persistence. The
// player values are shared, not copied.
func (m *Manager) Snapshot() map[string]*actor.Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*actor.Player, len(m.players))
	for k, v := range m.players {
		out[k] = v
	}
	return out
}

// Restore installs a loaded roster and rebinds saved combats. Returns
// any recovery lines (stale victories resolved during load), keyed by
// player.
//
// Precondition: called once at boot, before commands are served.
func (m *Manager) Restore(players map[string]*actor.Player) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	recovered := make(map[string]string)
	for key, p := range players {
		m.players[key] = p
		if msg := m.registry.Restore(p); msg != "" {
			recovered[key] = msg
		}
	}
	m.logger.Info("roster restored",
		zap.Int("players", len(players)),
		zap.Int("recovered_victories", len(recovered)),
	)
	return recovered
}

// playerFor resolves the acting player, or the standard onboarding
// line when they have no save yet.
func (m *Manager) playerFor(channel, username string) (*actor.Player, string, bool) {
	m.mu.RLock()
	p, ok := m.players[actor.Key(channel, username)]
	m.mu.RUnlock()
	if !ok {
		return nil, "use %start first.", false
	}
	return p, "", true
}

// persist saves the roster best-effort. Storage failures never
// interrupt play.
func (m *Manager) persist() {
	if m.saver == nil {
		return
	}
	if err := m.saver.Save(context.Background(), m.Snapshot()); err != nil {
		m.logger.Warn("roster save failed", zap.Error(err))
	}
}
