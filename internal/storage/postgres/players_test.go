package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjohnstone/embervale/internal/game/actor"
	"github.com/kjohnstone/embervale/internal/storage/postgres"
	"github.com/kjohnstone/embervale/internal/testutil"
)

func TestPlayerStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)

	store := postgres.NewPlayerStore(pc.Pool)
	ctx := context.Background()

	p := actor.NewPlayer("#chan", "ada", "Dark Thicket")
	p.Class = actor.ClassMage
	p.Gold = 17
	p.Mods.SpellPower = 5

	require.NoError(t, store.Save(ctx, map[string]*actor.Player{p.Key(): p}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, loaded, p.Key())
	assert.Equal(t, actor.ClassMage, loaded[p.Key()].Class)
	assert.Equal(t, 17, loaded[p.Key()].Gold)
	assert.Equal(t, 5, loaded[p.Key()].Mods.SpellPower)
}

func TestSavePrunesRemovedPlayers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)

	store := postgres.NewPlayerStore(pc.Pool)
	ctx := context.Background()

	a := actor.NewPlayer("#chan", "ada", "Dark Thicket")
	b := actor.NewPlayer("#chan", "brendan", "Frozen Pond")
	require.NoError(t, store.Save(ctx, map[string]*actor.Player{
		a.Key(): a,
		b.Key(): b,
	}))

	// Hardcore death removed brendan from the roster.
	require.NoError(t, store.Save(ctx, map[string]*actor.Player{a.Key(): a}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, loaded, a.Key())
	assert.NotContains(t, loaded, b.Key())
}

func TestSaveUpsertsExistingPlayer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)

	store := postgres.NewPlayerStore(pc.Pool)
	ctx := context.Background()

	p := actor.NewPlayer("#chan", "ada", "Dark Thicket")
	require.NoError(t, store.Save(ctx, map[string]*actor.Player{p.Key(): p}))

	p.Gold = 50
	p.Level = 3
	require.NoError(t, store.Save(ctx, map[string]*actor.Player{p.Key(): p}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded[p.Key()].Gold)
	assert.Equal(t, 3, loaded[p.Key()].Level)
}
