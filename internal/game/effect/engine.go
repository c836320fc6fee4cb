// Package effect implements the item/skill effect dispatch engine. Each
// effect name maps to one handler; handlers mutate player or enemy
// state and report a narration. Damage always routes through the
// Damager so deaths resolve through the encounter pipeline.
package effect

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/game/rng"
	"github.com/kjohnstone/embervale/internal/scripting"
)

// Result is the outcome of applying a single effect. Failures degrade
// to narration; they never abort the surrounding action.
type Result struct {
	Text string
	OK   bool
}

// Damager is the health-mutation pipeline. Implemented by the encounter
// registry; defined here so effect handlers stay free of an encounter
// dependency.
type Damager interface {
	// ApplyDamage removes up to amount HP from target and resolves any
	// resulting death. Returns the damage actually dealt.
	ApplyDamage(target *actor.Participant, amount int, source string) int
}

// Context carries the inputs to one effect application. Enemy is nil
// outside combat, in which case damage-dealing effects degrade to their
// out-of-combat narration.
type Context struct {
	Player    *actor.Player
	Enemy     *actor.Enemy
	Magnitude int
	// Duration is 0 when the effect descriptor did not specify one;
	// handlers fall back to their own defaults.
	Duration int
}

// durationOr returns the context duration, or def when unset.
func (c *Context) durationOr(def int) int {
	if c.Duration > 0 {
		return c.Duration
	}
	return def
}

type handlerFunc func(*Context) (string, error)

// Engine dispatches effect names to handlers. The handler registry is
// built once at construction and never mutated, so a single engine is
// safe to share.
type Engine struct {
	handlers map[string]handlerFunc
	damager  Damager
	src      rng.Source
	scripts  *scripting.EffectLibrary
	logger   *zap.Logger
}

// NewEngine builds the effect engine.
//
// Precondition: damager, src, and logger must be non-nil; scripts may
// be nil when no scripted effects are configured.
// Postcondition: Returns an engine with every built-in handler
// registered.
func NewEngine(damager Damager, src rng.Source, scripts *scripting.EffectLibrary, logger *zap.Logger) *Engine {
	e := &Engine{
		damager: damager,
		src:     src,
		scripts: scripts,
		logger:  logger,
	}
	e.handlers = e.newHandlers()
	return e
}

// Known reports whether name resolves to a built-in or scripted handler.
func (e *Engine) Known(name string) bool {
	if _, ok := e.handlers[name]; ok {
		return true
	}
	return e.scripts != nil && e.scripts.Has(name)
}

// Apply runs the named effect and returns its Result.
//
// Unknown names produce "Unknown effect: <name>"; handler errors and
// panics produce "Effect <name> failed: <reason>". The failure result
// is first-class; the recover guard only backstops handler bugs.
func (e *Engine) Apply(name string, magnitude int, player *actor.Player, enemy *actor.Enemy, duration int) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("effect handler panicked",
				zap.String("effect", name),
				zap.Any("panic", r))
			res = failure(name, fmt.Sprintf("%v", r))
		}
	}()

	ctx := &Context{Player: player, Enemy: enemy, Magnitude: magnitude, Duration: duration}

	handler, ok := e.handlers[name]
	if !ok {
		if e.scripts != nil && e.scripts.Has(name) {
			return e.applyScripted(name, ctx)
		}
		return Result{Text: "Unknown effect: " + name}
	}

	text, err := handler(ctx)
	if err != nil {
		return failure(name, err.Error())
	}
	return Result{Text: text, OK: true}
}

// ApplyItem runs every effect carried by the item descriptor list and
// returns one Result per effect.
func (e *Engine) ApplyItem(effects []ItemEffect, player *actor.Player, enemy *actor.Enemy) []Result {
	results := make([]Result, 0, len(effects))
	for _, eff := range effects {
		results = append(results, e.Apply(eff.Name, eff.Magnitude, player, enemy, eff.Duration))
	}
	return results
}

// ItemEffect mirrors the catalog effect descriptor without importing
// the catalog package.
type ItemEffect struct {
	Name      string
	Magnitude int
	Duration  int
}

// applyScripted bridges a Lua-defined effect into the engine, exposing
// the damage pipeline and healing as script callbacks.
func (e *Engine) applyScripted(name string, ctx *Context) Result {
	hooks := scripting.Hooks{
		PlayerLevel: func() int { return ctx.Player.Level },
		Heal: func(amount int) int {
			return ctx.Player.Heal(amount)
		},
		DealDamage: func(amount int) int {
			if ctx.Enemy == nil {
				return 0
			}
			return e.damager.ApplyDamage(&ctx.Enemy.Participant, amount, "script:"+name)
		},
	}
	text, err := e.scripts.Run(name, ctx.Magnitude, ctx.Duration, hooks)
	if err != nil {
		e.logger.Warn("scripted effect failed",
			zap.String("effect", name),
			zap.Error(err))
		return failure(name, err.Error())
	}
	return Result{Text: text, OK: true}
}

func failure(name, reason string) Result {
	return Result{Text: fmt.Sprintf("Effect %s failed: %s", name, reason)}
}
