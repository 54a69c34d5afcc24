// Package memory implements the card matching game.
// Cards are dealt face down in pairs; the player turns two at a time and
// matching pairs stay face up. Fewer moves means a higher score.
package memory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
)

// TimerClock drives the match and mismatch delays.
const TimerClock core.TimerID = 0

// ClockInterval is the resolution of the reveal delays.
const ClockInterval = 100 * time.Millisecond

const (
	cardW = 12
	cardH = 3
	gapX  = 2
	gapY  = 1
)

func init() {
	registry.Register(nav.Memory, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}

// Game is one memory session.
type Game struct {
	cfg config.MemoryConfig
	env core.Env

	cards   []Card
	cursor  int
	faceUp  []int // unmatched face-up cards, at most two
	moves   int
	matched int

	pendingLeft time.Duration
	done        bool

	width, height int
	rects         []core.Rect
}

// New creates a memory game with the given configuration.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg.Memory}
}

// Activity returns the navigation activity for this game.
func (g *Game) Activity() nav.Activity { return nav.Memory }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Memory Match" }

// Blurb returns the home menu description.
func (g *Game) Blurb() string { return "Find all the animal pairs in as few moves as you can." }

// Start deals a fresh board.
func (g *Game) Start(env core.Env) {
	if env.Rand == nil {
		env.Rand = core.NewRand(env.Config.Seed)
	}
	g.env = env
	g.done = false
	g.deal()
	g.Resize(env.Config.ScreenW, env.Config.ScreenH)
}

func (g *Game) deal() {
	g.cards = Deal(g.env.Rand, g.cfg.Symbols, g.cfg.Pairs)
	g.cursor = 0
	g.faceUp = g.faceUp[:0]
	g.moves = 0
	g.matched = 0
	g.pendingLeft = 0
}

// Timers returns the reveal clock.
func (g *Game) Timers() []core.TimerSpec {
	return []core.TimerSpec{{ID: TimerClock, Interval: ClockInterval}}
}

// Fire advances a pending reveal. Once its delay has elapsed a matching pair
// is kept and a mismatched pair turns back over.
func (g *Game) Fire(id core.TimerID) {
	if id != TimerClock || g.done || len(g.faceUp) < 2 {
		return
	}

	g.pendingLeft -= ClockInterval
	if g.pendingLeft > 0 {
		return
	}

	a, b := g.faceUp[0], g.faceUp[1]
	g.faceUp = g.faceUp[:0]

	if g.cards[a].Symbol != g.cards[b].Symbol {
		g.cards[a].Revealed = false
		g.cards[b].Revealed = false
		return
	}

	g.cards[a].Matched = true
	g.cards[b].Matched = true
	g.matched++
	g.env.Emit(core.CueMatch)

	if g.matched == len(g.cards)/2 {
		g.done = true
		g.env.Emit(core.CueFinish)
		if g.env.Complete != nil {
			g.env.Complete(g.Score())
		}
	}
}

// Flip turns a face-down card over. It is ignored while a pair is pending,
// and for cards that are already face up.
func (g *Game) Flip(i int) {
	if g.done || i < 0 || i >= len(g.cards) || len(g.faceUp) >= 2 {
		return
	}
	if c := g.cards[i]; c.Revealed || c.Matched {
		return
	}

	g.cards[i].Revealed = true
	g.faceUp = append(g.faceUp, i)
	if len(g.faceUp) < 2 {
		return
	}

	g.moves++
	if g.cards[g.faceUp[0]].Symbol == g.cards[i].Symbol {
		g.pendingLeft = g.cfg.MatchDelay
	} else {
		g.pendingLeft = g.cfg.MismatchDelay
		g.env.Emit(core.CueWrong)
	}
}

// Restart deals a new board and resets the move counter.
func (g *Game) Restart() {
	if g.done {
		return
	}
	g.deal()
}

// Handle applies one input event.
func (g *Game) Handle(ev core.InputEvent) {
	if g.done {
		return
	}

	cols := g.columns()
	n := len(g.cards)
	switch ev.Kind {
	case core.InputPress:
		switch ev.Action {
		case core.ActionLeft:
			if g.cursor%cols > 0 {
				g.cursor--
			}
		case core.ActionRight:
			if g.cursor%cols < cols-1 && g.cursor+1 < n {
				g.cursor++
			}
		case core.ActionUp:
			if g.cursor-cols >= 0 {
				g.cursor -= cols
			}
		case core.ActionDown:
			if g.cursor+cols < n {
				g.cursor += cols
			}
		case core.ActionConfirm:
			g.Flip(g.cursor)
		case core.ActionRestart:
			g.Restart()
		}
	case core.InputClick:
		for i, r := range g.rects {
			if r.Contains(ev.X, ev.Y) {
				g.cursor = i
				g.Flip(i)
				return
			}
		}
	}
}

func (g *Game) columns() int {
	if g.cfg.Columns < 1 {
		return 1
	}
	return g.cfg.Columns
}

// Resize centers the card grid on screen.
func (g *Game) Resize(width, height int) {
	g.width, g.height = width, height

	cols := g.columns()
	rows := (len(g.cards) + cols - 1) / cols
	gridW := cols*cardW + (cols-1)*gapX
	gridH := rows*cardH + (rows-1)*gapY
	x0 := (width - gridW) / 2
	y0 := max((height-gridH)/2, 2)

	g.rects = g.rects[:0]
	for i := range g.cards {
		col, row := i%cols, i/cols
		g.rects = append(g.rects, core.NewRect(x0+col*(cardW+gapX), y0+row*(cardH+gapY), cardW, cardH))
	}
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Moves: %d", g.moves), core.ColorBrightCyan)
	pairs := fmt.Sprintf("Pairs: %d/%d ", g.matched, len(g.cards)/2)
	dst.DrawTextColor(g.width-len(pairs), 0, pairs, core.ColorBrightYellow)

	for i, r := range g.rects {
		if i >= len(g.cards) {
			break
		}
		c := g.cards[i]

		label, color := "?", core.ColorBlue
		switch {
		case c.Matched:
			label, color = c.Symbol, core.ColorBrightGreen
		case c.Revealed:
			label, color = c.Symbol, core.ColorBrightWhite
		}
		border := color
		if i == g.cursor && !g.done {
			border = core.ColorBrightYellow
		}
		dst.DrawBox(r, border)
		dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y+1, label, color)
	}

	if g.done {
		dst.DrawTextCentered(g.height-2, fmt.Sprintf("All pairs found in %d moves!", g.moves), core.ColorBrightMagenta)
	}
	dst.DrawTextColor(1, g.height-1, "arrows move · Enter flip · click a card · R new board · Esc home", core.ColorGray)
}

// Score returns max(base_score - moves, min_score).
func (g *Game) Score() int {
	return max(g.cfg.BaseScore-g.moves, g.cfg.MinScore)
}

// Cards returns a copy of the board.
func (g *Game) Cards() []Card {
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// State returns the current externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Finished: g.done,
		Round:    g.moves,
	}
}
