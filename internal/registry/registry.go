// Package registry provides a global registry of mini-game factories.
// Games register themselves in init() functions, so the host can mount them
// by activity without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
)

// Game is the contract every scored mini-game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The host owns timing, input mapping and rendering.
type Game interface {
	// Activity returns the navigation activity this game is mounted as.
	Activity() nav.Activity

	// Title returns a human-readable name for display.
	Title() string

	// Blurb is the one-line description shown on the home menu.
	Blurb() string

	// Start begins a fresh session. env.Complete must be called exactly once
	// per Start, when the session ends.
	Start(env core.Env)

	// Timers lists the periodic timing sources the host must drive.
	Timers() []core.TimerSpec

	// Fire runs one invocation of the given timing source.
	Fire(id core.TimerID)

	// Handle applies one input event.
	Handle(ev core.InputEvent)

	// Resize tells the game the screen size it renders into.
	Resize(width, height int)

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current externally visible state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	Activity nav.Activity
	Title    string
	Blurb    string
}

// Factory creates a new game instance from the loaded configuration.
type Factory func(cfg config.Config) Game

var (
	factories = make(map[nav.Activity]Factory)
	infos     = make(map[nav.Activity]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if the activity is not a game or is already registered.
func Register(a nav.Activity, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if !a.IsGame() {
		panic(fmt.Sprintf("registry: %s is not a game activity", a))
	}
	if _, exists := factories[a]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", a))
	}

	factories[a] = f

	g := f(config.Default())
	infos[a] = GameInfo{Activity: a, Title: g.Title(), Blurb: g.Blurb()}
}

// List returns all registered games in activity order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Activity < result[j].Activity
	})
	return result
}

// Create instantiates the game for an activity.
func Create(a nav.Activity, cfg config.Config) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[a]
	if !ok {
		return nil, fmt.Errorf("registry: no game registered for %q", a)
	}
	return f(cfg), nil
}

// Exists checks whether a game is registered for the activity.
func Exists(a nav.Activity) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[a]
	return ok
}
