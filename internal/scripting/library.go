package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Hooks are the game callbacks exposed to a scripted effect for one
// invocation. Nil fields read as zero from Lua.
type Hooks struct {
	// PlayerLevel returns the acting player's level.
	PlayerLevel func() int
	// Heal restores HP to the acting player and returns the amount
	// actually restored.
	Heal func(amount int) int
	// DealDamage routes damage through the combat pipeline and returns
	// the amount actually dealt. Returns 0 outside combat.
	DealDamage func(amount int) int
}

// EffectLibrary owns one sandboxed LState holding Lua-defined effect
// handlers. Scripts register handlers by name:
//
//	effects.register("soul_siphon", function(ctx)
//	    local dealt = ctx.damage(ctx.magnitude)
//	    ctx.heal(dealt)
//	    return "siphoned " .. dealt .. " HP"
//	end)
//
// The LState is single-threaded; the mutex serializes Run calls.
type EffectLibrary struct {
	mu        sync.Mutex
	state     *lua.LState
	handlers  map[string]*lua.LFunction
	instLimit int
	logger    *zap.Logger
}

// NewEffectLibrary creates an empty library.
//
// Precondition: logger must be non-nil.
func NewEffectLibrary(logger *zap.Logger) *EffectLibrary {
	return &EffectLibrary{
		handlers: make(map[string]*lua.LFunction),
		logger:   logger,
	}
}

// LoadDir builds a sandboxed VM, registers the effects module, then
// executes every *.lua file in scriptDir in lexicographic order.
// Replaces any previously loaded VM.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: Handlers registered by the scripts are callable via
// Run; returns error on Lua load failure.
func (lib *EffectLibrary) LoadDir(scriptDir string, instLimit int) error {
	L := NewSandboxedState(instLimit)
	handlers := make(map[string]*lua.LFunction)
	registerEffectsModule(L, handlers)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	lib.mu.Lock()
	if lib.state != nil {
		lib.state.Close()
	}
	lib.state = L
	lib.handlers = handlers
	lib.instLimit = instLimit
	lib.mu.Unlock()

	lib.logger.Info("scripting: effect library loaded",
		zap.String("dir", scriptDir),
		zap.Int("handlers", len(handlers)),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// Has reports whether a scripted handler is registered for name.
func (lib *EffectLibrary) Has(name string) bool {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	_, ok := lib.handlers[name]
	return ok
}

// Names returns the registered handler names, sorted.
func (lib *EffectLibrary) Names() []string {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	names := make([]string, 0, len(lib.handlers))
	for name := range lib.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run invokes the named handler with a context table carrying magnitude,
// duration, level, and the hook functions. The handler's string return
// becomes the effect narration; a nil return reads as "".
//
// Precondition: Has(name) must be true.
// Postcondition: Returns the narration, or an error on Lua runtime
// failure (including instruction-limit exhaustion).
func (lib *EffectLibrary) Run(name string, magnitude, duration int, hooks Hooks) (string, error) {
	lib.mu.Lock()
	defer lib.mu.Unlock()

	fn, ok := lib.handlers[name]
	if !ok {
		return "", fmt.Errorf("scripting: no handler for effect %q", name)
	}
	L := lib.state

	// Fresh budget per invocation.
	SetInstructionBudget(L, lib.instLimit)

	ctx := L.NewTable()
	L.SetField(ctx, "magnitude", lua.LNumber(magnitude))
	L.SetField(ctx, "duration", lua.LNumber(duration))
	level := 0
	if hooks.PlayerLevel != nil {
		level = hooks.PlayerLevel()
	}
	L.SetField(ctx, "level", lua.LNumber(level))
	L.SetField(ctx, "heal", L.NewFunction(hookFunc(hooks.Heal)))
	L.SetField(ctx, "damage", L.NewFunction(hookFunc(hooks.DealDamage)))

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, ctx); err != nil {
		lib.logger.Warn("scripting: Lua runtime error",
			zap.String("effect", name),
			zap.Error(err),
		)
		return "", fmt.Errorf("scripting: effect %q: %w", name, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	if s, ok := ret.(lua.LString); ok {
		return string(s), nil
	}
	return "", nil
}

// Close releases the VM. Run and Has return zero values afterwards.
func (lib *EffectLibrary) Close() {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if lib.state != nil {
		lib.state.Close()
		lib.state = nil
	}
	lib.handlers = make(map[string]*lua.LFunction)
}

// hookFunc wraps an int-to-int hook as a Lua function. A nil hook
// returns 0.
func hookFunc(hook func(int) int) lua.LGFunction {
	return func(L *lua.LState) int {
		amount := int(L.CheckNumber(1))
		if hook == nil {
			L.Push(lua.LNumber(0))
			return 1
		}
		L.Push(lua.LNumber(hook(amount)))
		return 1
	}
}

// registerEffectsModule defines the effects global with the register
// function scripts use to declare handlers.
func registerEffectsModule(L *lua.LState, handlers map[string]*lua.LFunction) {
	effects := L.NewTable()
	L.SetField(effects, "register", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		handlers[name] = fn
		return 0
	}))
	L.SetGlobal("effects", effects)
}
