package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kjohnstone/embervale/internal/scripting"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func loadedLibrary(t *testing.T, scripts map[string]string) *scripting.EffectLibrary {
	t.Helper()
	dir := t.TempDir()
	for name, body := range scripts {
		writeScript(t, dir, name, body)
	}
	lib := scripting.NewEffectLibrary(zaptest.NewLogger(t))
	require.NoError(t, lib.LoadDir(dir, 0))
	t.Cleanup(lib.Close)
	return lib
}

func TestEffectLibrary_RegisterAndRun(t *testing.T) {
	lib := loadedLibrary(t, map[string]string{
		"siphon.lua": `
			effects.register("soul_siphon", function(ctx)
				local dealt = ctx.damage(ctx.magnitude)
				local healed = ctx.heal(dealt)
				return "siphoned " .. healed .. " HP"
			end)
		`,
	})

	require.True(t, lib.Has("soul_siphon"))
	assert.False(t, lib.Has("missing"))

	var dealt, healed int
	text, err := lib.Run("soul_siphon", 7, 0, scripting.Hooks{
		DealDamage: func(n int) int { dealt = n; return n },
		Heal:       func(n int) int { healed = n; return n - 2 },
	})
	require.NoError(t, err)
	assert.Equal(t, 7, dealt)
	assert.Equal(t, 7, healed)
	assert.Equal(t, "siphoned 5 HP", text)
}

func TestEffectLibrary_ExposesLevelAndDuration(t *testing.T) {
	lib := loadedLibrary(t, map[string]string{
		"blessing.lua": `
			effects.register("scaling_blessing", function(ctx)
				return "blessed for " .. (ctx.magnitude + ctx.level) .. " over " .. ctx.duration .. " turns"
			end)
		`,
	})

	text, err := lib.Run("scaling_blessing", 4, 3, scripting.Hooks{
		PlayerLevel: func() int { return 6 },
	})
	require.NoError(t, err)
	assert.Equal(t, "blessed for 10 over 3 turns", text)
}

func TestEffectLibrary_NilHooksReadAsZero(t *testing.T) {
	lib := loadedLibrary(t, map[string]string{
		"drain.lua": `
			effects.register("void_drain", function(ctx)
				return "drained " .. ctx.damage(10)
			end)
		`,
	})

	text, err := lib.Run("void_drain", 1, 0, scripting.Hooks{})
	require.NoError(t, err)
	assert.Equal(t, "drained 0", text)
}

func TestEffectLibrary_RunUnknownHandler(t *testing.T) {
	lib := loadedLibrary(t, nil)
	_, err := lib.Run("nope", 1, 0, scripting.Hooks{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
}

func TestEffectLibrary_RuntimeErrorPropagates(t *testing.T) {
	lib := loadedLibrary(t, map[string]string{
		"bad.lua": `
			effects.register("explode", function(ctx)
				error("boom")
			end)
		`,
	})

	_, err := lib.Run("explode", 1, 0, scripting.Hooks{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
}

func TestEffectLibrary_LoadFailureOnBadLua(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "broken.lua", `this is not lua`)

	lib := scripting.NewEffectLibrary(zaptest.NewLogger(t))
	err := lib.LoadDir(dir, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.lua")
}

func TestEffectLibrary_MissingDirFails(t *testing.T) {
	lib := scripting.NewEffectLibrary(zaptest.NewLogger(t))
	require.Error(t, lib.LoadDir(filepath.Join(t.TempDir(), "absent"), 0))
}

func TestEffectLibrary_InstructionBudgetPerRun(t *testing.T) {
	lib := loadedLibrary(t, map[string]string{
		"loop.lua": `
			effects.register("busy", function(ctx)
				local n = 0
				for i = 1, 100 do n = n + i end
				return "n=" .. n
			end)
		`,
	})

	// Repeated runs must each get a fresh budget.
	for i := 0; i < 5; i++ {
		text, err := lib.Run("busy", 0, 0, scripting.Hooks{})
		require.NoError(t, err, "run %d", i)
		assert.Equal(t, "n=5050", text)
	}
}

func TestEffectLibrary_Names(t *testing.T) {
	lib := loadedLibrary(t, map[string]string{
		"a.lua": `effects.register("zeta", function(ctx) return "" end)`,
		"b.lua": `effects.register("alpha", function(ctx) return "" end)`,
	})
	assert.Equal(t, []string{"alpha", "zeta"}, lib.Names())
}
