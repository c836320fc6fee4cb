// Package main provides the game server binary: it wires the content
// catalogs, scripted effects, combat core, storage, and outbound event
// broadcast, and exposes a local console for playing without a chat
// transport attached.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/config"
	"github.com/kjohnstone/embervale/internal/event"
	"github.com/kjohnstone/embervale/internal/game/catalog"
	"github.com/kjohnstone/embervale/internal/game/drop"
	"github.com/kjohnstone/embervale/internal/game/effect"
	"github.com/kjohnstone/embervale/internal/game/encounter"
	"github.com/kjohnstone/embervale/internal/game/inventory"
	"github.com/kjohnstone/embervale/internal/game/rng"
	"github.com/kjohnstone/embervale/internal/game/session"
	"github.com/kjohnstone/embervale/internal/game/turn"
	"github.com/kjohnstone/embervale/internal/observability"
	"github.com/kjohnstone/embervale/internal/scripting"
	"github.com/kjohnstone/embervale/internal/server"
	"github.com/kjohnstone/embervale/internal/storage"
	"github.com/kjohnstone/embervale/internal/storage/jsonfile"
	"github.com/kjohnstone/embervale/internal/storage/postgres"
)

// luaInstructionBudget bounds each scripted effect invocation.
const luaInstructionBudget = 100000

// autosaveInterval is how often the roster is flushed regardless of
// player activity.
const autosaveInterval = 30 * time.Second

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting game server",
		zap.String("storage", cfg.Storage.Backend),
		zap.Bool("hardcore", cfg.Game.Hardcore),
	)

	var src rng.Source
	if cfg.Game.Seed != 0 {
		src = rng.NewSeededSource(cfg.Game.Seed)
		logger.Warn("running with a fixed random seed", zap.Int64("seed", cfg.Game.Seed))
	} else {
		src = rng.NewCryptoSource()
	}

	cat := catalog.Default()
	if cfg.Game.ContentDir != "" {
		cat, err = catalog.LoadDir(cfg.Game.ContentDir)
		if err != nil {
			logger.Fatal("loading content catalogs", zap.Error(err))
		}
	}
	logger.Info("content loaded",
		zap.Int("mobs", len(cat.Mobs())),
		zap.Int("bosses", len(cat.Bosses())),
		zap.Int("locations", len(cat.Locations())),
	)

	var scripts *scripting.EffectLibrary
	if cfg.Game.ScriptDir != "" {
		scripts = scripting.NewEffectLibrary(logger)
		if err := scripts.LoadDir(cfg.Game.ScriptDir, luaInstructionBudget); err != nil {
			logger.Fatal("loading effect scripts", zap.Error(err))
		}
		defer scripts.Close()
		logger.Info("effect scripts loaded", zap.Strings("effects", scripts.Names()))
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("opening storage", zap.Error(err))
	}
	defer store.Close()

	bus := event.NewBus(logger)
	drops, err := drop.NewDefault(cat, src)
	if err != nil {
		logger.Fatal("building drop engine", zap.Error(err))
	}
	registry := encounter.NewRegistry(drops, src, bus, logger)
	resolver := turn.NewResolver(registry, src, logger)
	effects := effect.NewEngine(registry, src, scripts, logger)
	bag := inventory.NewManager(cat, effects, logger)

	sessionCfg := session.Config{
		Hardcore:          cfg.Game.Hardcore,
		BossEncounterRate: cfg.Game.BossEncounterRate,
		RunSuccessMob:     cfg.Game.RunSuccessMob,
		RunSuccessBoss:    cfg.Game.RunSuccessBoss,
		RogueRunBonus:     cfg.Game.RogueRunBonus,
	}
	sessions := session.NewManager(sessionCfg, cat, drops, registry, resolver, bag,
		store, src, bus, logger)

	players, err := store.Load(ctx)
	if err != nil {
		logger.Fatal("loading saved roster", zap.Error(err))
	}
	for key, spoils := range sessions.Restore(players) {
		logger.Info("stale victory resolved on load",
			zap.String("player", key),
			zap.String("spoils", spoils),
		)
	}

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("broadcast", newBroadcastService(bus, cfg.Broadcast, logger))
	lifecycle.Add("autosave", newAutosaveService(sessions, store, logger))
	lifecycle.Add("console", newConsoleService(sessions))

	logger.Info("server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.Int("players", len(players)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Save(saveCtx, sessions.Snapshot()); err != nil {
		logger.Error("final roster save failed", zap.Error(err))
	}
}

// openStore builds the configured storage backend.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
		)
		return postgres.NewPlayerStore(pool), nil
	default:
		return jsonfile.New(cfg.Storage.Path, logger), nil
	}
}

// newBroadcastService consumes bus events and surfaces those above the
// configured thresholds. With no chat transport attached the
// announcements land in the log.
func newBroadcastService(bus *event.Bus, cfg config.BroadcastConfig, logger *zap.Logger) server.Service {
	events, cancel := bus.Subscribe()
	minRarity := catalog.Rarity(cfg.MinRarity)

	announce := func(ev event.Event) bool {
		switch ev.Type {
		case event.TypeDrop:
			return catalog.Rarity(ev.Rarity).AtLeast(minRarity)
		case event.TypeLevelUp:
			return cfg.LevelUps
		case event.TypeDefeat:
			return cfg.Deaths
		case event.TypeSpawn:
			return cfg.Bosses && strings.Contains(ev.Message, "BOSS")
		default:
			return false
		}
	}

	return &server.FuncService{
		StartFn: func() error {
			for ev := range events {
				if !announce(ev) {
					continue
				}
				logger.Info("announcement",
					zap.String("type", string(ev.Type)),
					zap.String("channel", ev.Channel),
					zap.String("player", ev.Player),
					zap.String("message", ev.Message),
				)
			}
			return nil
		},
		StopFn: cancel,
	}
}

// newAutosaveService flushes the roster snapshot on a fixed interval.
func newAutosaveService(sessions *session.Manager, store storage.Store, logger *zap.Logger) server.Service {
	done := make(chan struct{})
	return &server.FuncService{
		StartFn: func() error {
			ticker := time.NewTicker(autosaveInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					if err := store.Save(ctx, sessions.Snapshot()); err != nil {
						logger.Warn("autosave failed", zap.Error(err))
					}
					cancel()
				case <-done:
					return nil
				}
			}
		},
		StopFn: func() { close(done) },
	}
}

// newConsoleService reads commands from stdin so the game is playable
// locally without a chat transport.
func newConsoleService(sessions *session.Manager) server.Service {
	const channel, user = "console", "player"
	return &server.FuncService{
		StartFn: func() error {
			scanner := bufio.NewScanner(os.Stdin)
			banner := "Game console ready. Try %start, then %class warrior|mage|rogue."
			fmt.Println(banner)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				fmt.Println(dispatch(sessions, channel, user, line))
			}
			return scanner.Err()
		},
		StopFn: func() {},
	}
}

// dispatch routes one chat line to the session layer.
func dispatch(sessions *session.Manager, channel, user, line string) string {
	cmd, args := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch strings.ToLower(strings.TrimPrefix(cmd, "%")) {
	case "start":
		return sessions.Start(channel, user)
	case "class":
		return sessions.ChooseClass(channel, user, args)
	case "classes":
		return sessions.Classes()
	case "stats":
		return sessions.Stats(channel, user)
	case "explore":
		return sessions.Explore(channel, user)
	case "hunt":
		return sessions.Hunt(channel, user)
	case "travel":
		return sessions.Travel(channel, user)
	case "fight":
		return sessions.Fight(channel, user)
	case "skill":
		return sessions.Skill(channel, user)
	case "run":
		return sessions.Run(channel, user)
	case "use":
		return sessions.Use(channel, user, args)
	case "equip":
		return sessions.Equip(channel, user, args)
	case "unequip":
		return sessions.Unequip(channel, user, args)
	case "bag":
		return sessions.Bag(channel, user)
	default:
		return "unknown command. Try %start, %stats, %explore, %hunt, %fight, %skill, %run, %use, %equip, %bag, %travel."
	}
}
