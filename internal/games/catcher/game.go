// Package catcher implements the fruit catching game.
// Fruit falls from the top of the field and the player moves a basket along
// the bottom with the arrow keys or the mouse. Every catch scores points until
// the session timer runs out.
package catcher

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
)

// Timing sources driven by the host.
const (
	TimerFrame core.TimerID = iota
	TimerSpawn
	TimerCountdown
)

type glyph struct {
	r rune
	c core.Color
}

var fruitGlyphs = map[string]glyph{
	"apple":      {'●', core.ColorRed},
	"banana":     {')', core.ColorYellow},
	"cherry":     {'ɞ', core.ColorBrightRed},
	"strawberry": {'♥', core.ColorRed},
	"orange":     {'●', core.ColorOrange},
	"grape":      {'♣', core.ColorPurple},
}

var defaultGlyph = glyph{'*', core.ColorBrightYellow}

func init() {
	registry.Register(nav.Catching, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}

// Game adapts the engine to the host: it maps cells to percentages, tracks
// held keys and draws the field.
type Game struct {
	cfg    config.CatcherConfig
	env    core.Env
	engine *Engine
	keys   core.KeyState

	step       int
	introSteps int
	done       bool

	width, height int
	field         core.Rect
}

// New creates a catching game with the given configuration.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg.Catcher}
}

// Activity returns the navigation activity for this game.
func (g *Game) Activity() nav.Activity { return nav.Catching }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Fruit Catcher" }

// Blurb returns the home menu description.
func (g *Game) Blurb() string { return "Catch the falling fruit before time runs out!" }

// Start begins a fresh session.
func (g *Game) Start(env core.Env) {
	if env.Rand == nil {
		env.Rand = core.NewRand(env.Config.Seed)
	}
	if env.Config.TickRate <= 0 {
		env.Config.TickRate = core.DefaultConfig().TickRate
	}
	g.env = env
	g.engine = NewEngine(g.cfg, env.Rand)
	g.keys = core.NewKeyState(stepsFor(g.cfg.Player.KeyRepeatDelay, env.Config.TickRate), g.cfg.Player.KeyHoldSteps)
	g.step = 0
	g.done = false
	g.introSteps = stepsFor(g.cfg.Session.Intro, env.Config.TickRate)
	g.Resize(env.Config.ScreenW, env.Config.ScreenH)
}

// Timers returns the frame, spawn and countdown sources.
func (g *Game) Timers() []core.TimerSpec {
	rate := g.env.Config.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return []core.TimerSpec{
		{ID: TimerFrame, Interval: time.Second / time.Duration(rate)},
		{ID: TimerSpawn, Interval: g.cfg.Spawn.Interval},
		{ID: TimerCountdown, Interval: time.Second},
	}
}

// Fire runs one invocation of a timing source.
func (g *Game) Fire(id core.TimerID) {
	if g.engine == nil || g.done {
		return
	}

	switch id {
	case TimerFrame:
		g.step++
		left := g.keys.Held(core.ActionLeft, g.step)
		right := g.keys.Held(core.ActionRight, g.step)
		res := g.engine.Step(left, right)
		for i := 0; i < res.Caught; i++ {
			g.env.Emit(core.CueCatch)
		}
	case TimerSpawn:
		g.engine.Spawn()
	case TimerCountdown:
		if g.engine.Countdown() {
			g.finish()
		}
	}
}

// stepsFor converts a duration into frame steps, rounding up.
func stepsFor(d time.Duration, tickRate int) int {
	return int(math.Ceil(d.Seconds() * float64(tickRate)))
}

func (g *Game) finish() {
	g.done = true
	g.keys.Clear()
	g.env.Emit(core.CueFinish)
	if g.env.Complete != nil {
		g.env.Complete(g.engine.Score())
	}
}

// Handle applies one input event.
func (g *Game) Handle(ev core.InputEvent) {
	if g.engine == nil || g.done {
		return
	}

	switch ev.Kind {
	case core.InputPress:
		if ev.Action == core.ActionLeft || ev.Action == core.ActionRight {
			g.keys.Press(ev.Action, g.step)
		}
	case core.InputRelease:
		g.keys.Release(ev.Action)
	case core.InputPointer, core.InputClick:
		if !g.field.Contains(ev.X, ev.Y) {
			return
		}
		pct, ok := g.field.PercentX(ev.X)
		if !ok {
			return
		}
		g.engine.PointerAt(pct)
	}
}

// Resize recomputes the play field: a header row, a bordered field and a
// hint row.
func (g *Game) Resize(width, height int) {
	g.width, g.height = width, height
	if width < 4 || height < 5 {
		g.field = core.Rect{}
		return
	}
	g.field = g.frame().Inset(1)
}

func (g *Game) frame() core.Rect {
	return core.NewRect(0, 1, g.width, g.height-2)
}

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		return
	}

	header := fmt.Sprintf(" Score: %d", g.engine.Score())
	dst.DrawTextColor(0, 0, header, core.ColorBrightYellow)
	timer := fmt.Sprintf("Time: %ds ", g.engine.TimeLeft())
	timeColor := core.ColorBrightGreen
	if g.engine.TimeLeft() <= 5 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColor(g.width-len(timer), 0, timer, timeColor)

	if g.field.Empty() {
		return
	}
	dst.DrawBox(g.frame(), core.ColorCyan)

	for _, f := range g.engine.Fruits() {
		x := g.field.ColumnAt(f.X)
		y := g.field.RowAt(f.Y)
		if !g.field.Contains(x, y) {
			continue
		}
		gl, ok := fruitGlyphs[f.Kind]
		if !ok {
			gl = defaultGlyph
		}
		dst.SetCell(x, y, gl.r, gl.c)
	}

	g.renderBasket(dst)

	if g.showIntro() {
		mid := g.field.Y + g.field.H/2
		dst.DrawTextCentered(mid-1, "Catch the falling fruit!", core.ColorBrightWhite)
		dst.DrawTextCentered(mid+1, "Move with ← → / A D or the mouse", core.ColorGray)
	}
	if g.done {
		dst.DrawTextCentered(g.field.Y+g.field.H/2, "Time's up!", core.ColorBrightMagenta)
	}

	dst.DrawTextColor(1, g.height-1, "←/→ move · mouse moves basket · Esc home", core.ColorGray)
}

// renderBasket draws the basket across the catch tolerance, on the row of the
// middle of the catch band.
func (g *Game) renderBasket(dst *core.Screen) {
	c := g.cfg.Catch
	row := g.field.RowAt((c.BandMin + c.BandMax) / 2)
	if row >= g.field.Bottom() {
		row = g.field.Bottom() - 1
	}
	left := core.Clamp(g.field.ColumnAt(g.engine.Catcher()-c.Tolerance), g.field.X, g.field.Right()-1)
	right := core.Clamp(g.field.ColumnAt(g.engine.Catcher()+c.Tolerance), g.field.X, g.field.Right()-1)
	if right-left < 2 {
		dst.SetCell(left, row, 'U', core.ColorOrange)
		return
	}
	basket := "╰" + strings.Repeat("─", right-left-1) + "╯"
	dst.DrawTextColor(left, row, basket, core.ColorOrange)
}

func (g *Game) showIntro() bool {
	return !g.done && g.engine.Score() == 0 && g.step < g.introSteps
}

// Catcher returns the basket position as a percentage of the field width.
func (g *Game) Catcher() float64 {
	if g.engine == nil {
		return 0
	}
	return g.engine.Catcher()
}

// State returns the current externally visible state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Finished: g.done,
		TimeLeft: g.engine.TimeLeft(),
	}
}
