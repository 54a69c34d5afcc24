package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	_ "github.com/vovakirdan/zukko-arcade/internal/games/arithmetic"
	_ "github.com/vovakirdan/zukko-arcade/internal/games/catcher"
	_ "github.com/vovakirdan/zukko-arcade/internal/games/memory"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
)

func TestListInActivityOrder(t *testing.T) {
	list := registry.List()
	require.Len(t, list, 3)

	assert.Equal(t, nav.Memory, list[0].Activity)
	assert.Equal(t, nav.Arithmetic, list[1].Activity)
	assert.Equal(t, nav.Catching, list[2].Activity)
	for _, info := range list {
		assert.NotEmpty(t, info.Title)
		assert.NotEmpty(t, info.Blurb)
	}
}

func TestCreate(t *testing.T) {
	for _, a := range []nav.Activity{nav.Memory, nav.Arithmetic, nav.Catching} {
		g, err := registry.Create(a, config.Default())
		require.NoError(t, err)
		assert.Equal(t, a, g.Activity())
		assert.True(t, registry.Exists(a))

		g.Start(core.Env{Config: core.DefaultConfig()})
		assert.NotEmpty(t, g.Timers())
		assert.False(t, g.State().Finished)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := registry.Create(nav.BuddyReward, config.Default())
	assert.Error(t, err)
	assert.False(t, registry.Exists(nav.Home))
}

func TestRegisterRejectsNonGames(t *testing.T) {
	assert.Panics(t, func() {
		registry.Register(nav.Home, func(config.Config) registry.Game { return nil })
	})
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		registry.Register(nav.Memory, func(config.Config) registry.Game { return nil })
	})
}
