package catcher

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
)

func startGame(t *testing.T, completions *[]int) *Game {
	t.Helper()
	g := New(config.Default())
	g.Start(core.Env{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Complete: func(score int) {
			*completions = append(*completions, score)
		},
	})
	return g
}

func TestTimers(t *testing.T) {
	var done []int
	g := startGame(t, &done)

	timers := g.Timers()
	if len(timers) != 3 {
		t.Fatalf("got %d timers, want 3", len(timers))
	}
	want := map[core.TimerID]time.Duration{
		TimerFrame:     time.Second / 60,
		TimerSpawn:     800 * time.Millisecond,
		TimerCountdown: time.Second,
	}
	for _, ts := range timers {
		if want[ts.ID] != ts.Interval {
			t.Errorf("timer %d interval = %v, want %v", ts.ID, ts.Interval, want[ts.ID])
		}
	}
}

func TestCompletesExactlyOnceWithScore(t *testing.T) {
	var done []int
	g := startGame(t, &done)

	if s := g.State(); s.Score != 0 || s.TimeLeft != 30 {
		t.Fatalf("initial state = %+v", s)
	}

	g.engine.fruits = []Fruit{{ID: 100, X: 50, Y: 84, Speed: 2}}
	g.Fire(TimerFrame)
	if g.State().Score != 5 {
		t.Fatalf("score after catch = %d, want 5", g.State().Score)
	}

	for i := 0; i < 45; i++ {
		g.Fire(TimerCountdown)
		g.Fire(TimerFrame)
		g.Fire(TimerSpawn)
	}

	if len(done) != 1 {
		t.Fatalf("completion called %d times, want 1", len(done))
	}
	if done[0] != g.State().Score {
		t.Errorf("completed with %d, state score %d", done[0], g.State().Score)
	}
	if !g.State().Finished {
		t.Error("state should be finished")
	}
}

func startGameWith(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	g := New(cfg)
	g.Start(core.Env{
		Config:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Complete: func(int) {},
	})
	return g
}

func TestHeldKeyMovesBasket(t *testing.T) {
	var done []int
	g := startGame(t, &done)

	g.Handle(core.Press(core.ActionLeft))
	for i := 0; i < 5; i++ {
		g.Fire(TimerFrame)
	}
	if got := g.Catcher(); got != 42.5 {
		t.Errorf("catcher = %v, want 42.5 after five held steps", got)
	}

	g.Handle(core.InputEvent{Kind: core.InputRelease, Action: core.ActionLeft})
	at := g.Catcher()
	g.Fire(TimerFrame)
	if g.Catcher() != at {
		t.Error("released key should not move the basket")
	}
}

func TestHeldKeyBridgesFirstRepeatDelay(t *testing.T) {
	cfg := config.Default()
	cfg.Catcher.Player.KeySpeed = 1
	g := startGameWith(t, cfg)

	// 500ms at 60 fps: the terminal's first repeat lands at step 30.
	g.Handle(core.Press(core.ActionLeft))
	for step := 1; step <= 30; step++ {
		g.Fire(TimerFrame)
		if want := 50 - float64(step); g.Catcher() != want {
			t.Fatalf("step %d: catcher = %v, want %v (key stalled before the first repeat)", step, g.Catcher(), want)
		}
	}

	g.Handle(core.Press(core.ActionLeft))
	for step := 31; step <= 39; step++ {
		g.Fire(TimerFrame)
	}
	if got := g.Catcher(); got != 11 {
		t.Fatalf("catcher = %v after repeats, want 11", got)
	}

	// Repeats stopped: the short window lapses and the basket rests.
	g.Fire(TimerFrame)
	g.Fire(TimerFrame)
	if got := g.Catcher(); got != 11 {
		t.Errorf("catcher = %v once repeats stop, want 11", got)
	}
}

func TestPointerInsideField(t *testing.T) {
	var done []int
	g := startGame(t, &done)

	// Field is the 80x22 frame inset by one: columns 1..78.
	g.Handle(core.Pointer(1+39, 10))
	g.Fire(TimerFrame)
	if got := g.engine.Catcher(); got != 50 {
		t.Errorf("catcher = %v, want 50", got)
	}

	g.Handle(core.Pointer(1, 10))
	g.Fire(TimerFrame)
	if got := g.engine.Catcher(); got != 5 {
		t.Errorf("catcher = %v, want clamped 5", got)
	}
}

func TestPointerOutsideFieldIgnored(t *testing.T) {
	var done []int
	g := startGame(t, &done)

	g.Handle(core.Pointer(10, 0))  // header row
	g.Handle(core.Pointer(0, 10))  // border
	g.Handle(core.Pointer(10, 23)) // hint row
	g.Fire(TimerFrame)

	if got := g.engine.Catcher(); got != 50 {
		t.Errorf("catcher = %v, want 50", got)
	}
}

func TestUnmeasurableFieldSkipsPointer(t *testing.T) {
	var done []int
	g := startGame(t, &done)
	g.Resize(0, 0)

	g.Handle(core.Pointer(0, 0))
	g.Fire(TimerFrame)

	if got := g.engine.Catcher(); got != 50 {
		t.Errorf("catcher = %v, want 50", got)
	}

	screen := core.NewScreen(0, 0)
	g.Render(screen)
}

func TestCuesEmitted(t *testing.T) {
	var cues []core.Cue
	g := New(config.Default())
	g.Start(core.Env{
		Config: core.DefaultConfig(),
		Cue:    func(c core.Cue) { cues = append(cues, c) },
	})

	g.engine.fruits = []Fruit{{ID: 100, X: 50, Y: 84, Speed: 2}}
	g.Fire(TimerFrame)
	for i := 0; i < 30; i++ {
		g.Fire(TimerCountdown)
	}

	if len(cues) != 2 || cues[0] != core.CueCatch || cues[1] != core.CueFinish {
		t.Errorf("cues = %v, want [catch finish]", cues)
	}
}

func TestRender(t *testing.T) {
	var done []int
	g := startGame(t, &done)
	g.engine.fruits = []Fruit{{ID: 1, X: 50, Y: 40, Kind: "banana", Speed: 2}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Time: 30s", "Catch the falling fruit!", ")", "╰"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
