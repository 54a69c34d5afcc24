// Package arithmetic implements the math quiz.
// Each round asks one addition or subtraction question with four options.
// Feedback stays on screen for a short delay before the next round.
package arithmetic

import (
	"fmt"
	"time"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
	"github.com/vovakirdan/zukko-arcade/internal/nav"
	"github.com/vovakirdan/zukko-arcade/internal/registry"
)

// TimerClock drives the feedback delay.
const TimerClock core.TimerID = 0

// ClockInterval is the resolution of the feedback delay.
const ClockInterval = 100 * time.Millisecond

const (
	optionW   = 11
	optionH   = 3
	optionGap = 2
)

func init() {
	registry.Register(nav.Arithmetic, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}

// Game is one quiz session.
type Game struct {
	cfg config.ArithmeticConfig
	env core.Env

	q      Question
	round  int // 1-based
	score  int
	cursor int

	// Feedback for the current round; picked is -1 while the question is open.
	picked       int
	feedbackLeft time.Duration

	done    bool
	started bool

	width, height int
	options       []core.Rect
}

// New creates a quiz with the given configuration.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg.Arithmetic, picked: -1}
}

// Activity returns the navigation activity for this game.
func (g *Game) Activity() nav.Activity { return nav.Arithmetic }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Math Quiz" }

// Blurb returns the home menu description.
func (g *Game) Blurb() string { return "Add and subtract to earn stars." }

// Start begins a fresh session at round one.
func (g *Game) Start(env core.Env) {
	if env.Rand == nil {
		env.Rand = core.NewRand(env.Config.Seed)
	}
	g.env = env
	g.round = 1
	g.score = 0
	g.cursor = 0
	g.done = false
	g.started = true
	g.ask()
	g.Resize(env.Config.ScreenW, env.Config.ScreenH)
}

func (g *Game) ask() {
	g.q = Generate(g.env.Rand, g.cfg)
	g.picked = -1
	g.feedbackLeft = 0
}

// Timers returns the feedback clock.
func (g *Game) Timers() []core.TimerSpec {
	return []core.TimerSpec{{ID: TimerClock, Interval: ClockInterval}}
}

// Fire advances the feedback delay; when it runs out the next round starts
// or the session completes.
func (g *Game) Fire(id core.TimerID) {
	if id != TimerClock || !g.started || g.done || g.picked < 0 {
		return
	}

	g.feedbackLeft -= ClockInterval
	if g.feedbackLeft > 0 {
		return
	}

	if g.round >= g.cfg.Rounds {
		g.done = true
		g.env.Emit(core.CueFinish)
		if g.env.Complete != nil {
			g.env.Complete(g.score)
		}
		return
	}
	g.round++
	g.ask()
}

// Handle applies one input event. Input is locked while feedback is shown.
func (g *Game) Handle(ev core.InputEvent) {
	if !g.started || g.done || g.picked >= 0 {
		return
	}

	switch ev.Kind {
	case core.InputPress:
		switch ev.Action {
		case core.ActionChoice:
			g.answer(ev.Slot - 1)
		case core.ActionConfirm:
			g.answer(g.cursor)
		case core.ActionLeft:
			g.cursor = (g.cursor + OptionCount - 1) % OptionCount
		case core.ActionRight:
			g.cursor = (g.cursor + 1) % OptionCount
		}
	case core.InputClick:
		for i, r := range g.options {
			if r.Contains(ev.X, ev.Y) {
				g.answer(i)
				return
			}
		}
	}
}

func (g *Game) answer(i int) {
	if i < 0 || i >= len(g.q.Options) {
		return
	}
	g.picked = i
	g.cursor = i
	g.feedbackLeft = g.cfg.FeedbackDelay
	if g.q.Options[i] == g.q.Answer {
		g.score += g.cfg.Points
		g.env.Emit(core.CueCorrect)
	} else {
		g.env.Emit(core.CueWrong)
	}
}

// Resize lays the options out in one centered row.
func (g *Game) Resize(width, height int) {
	g.width, g.height = width, height

	total := OptionCount*optionW + (OptionCount-1)*optionGap
	x := (width - total) / 2
	y := height/2 + 1
	g.options = g.options[:0]
	for i := 0; i < OptionCount; i++ {
		g.options = append(g.options, core.NewRect(x+i*(optionW+optionGap), y, optionW, optionH))
	}
}

// Render draws the question, the options and any feedback.
func (g *Game) Render(dst *core.Screen) {
	if !g.started {
		return
	}

	dst.DrawTextColor(1, 0, fmt.Sprintf("Round %d/%d", g.round, g.cfg.Rounds), core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d ", g.score)
	dst.DrawTextColor(g.width-len(score), 0, score, core.ColorBrightYellow)

	dst.DrawTextCentered(g.height/2-3, g.q.Text(), core.ColorBrightWhite)

	for i, r := range g.options {
		if i >= len(g.q.Options) {
			break
		}
		color := core.ColorWhite
		switch {
		case g.picked >= 0 && g.q.Options[i] == g.q.Answer:
			color = core.ColorBrightGreen
		case i == g.picked:
			color = core.ColorBrightRed
		case g.picked < 0 && i == g.cursor:
			color = core.ColorBrightYellow
		}
		dst.DrawBox(r, color)
		label := fmt.Sprintf("%d) %d", i+1, g.q.Options[i])
		dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y+1, label, color)
	}

	if g.picked >= 0 {
		msg, color := "Great job! ⭐", core.ColorBrightGreen
		if g.q.Options[g.picked] != g.q.Answer {
			msg = fmt.Sprintf("Oops! The answer is %d.", g.q.Answer)
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(g.height/2+optionH+2, msg, color)
	}

	dst.DrawTextColor(1, g.height-1, "1-4 answer · ←/→ + Enter · click an option · Esc home", core.ColorGray)
}

// State returns the current externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Finished: g.done,
		Round:    g.round,
	}
}

// Question returns the question currently asked.
func (g *Game) Question() Question { return g.q }
