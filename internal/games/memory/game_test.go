package memory

import (
	"strings"
	"testing"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
)

func startMemory(completions *[]int, cues *[]core.Cue) *Game {
	g := New(config.Default())
	g.Start(core.Env{
		Config:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 11},
		Complete: func(score int) { *completions = append(*completions, score) },
		Cue:      func(c core.Cue) { *cues = append(*cues, c) },
	})
	return g
}

// pairsOf returns the board positions grouped by symbol.
func pairsOf(g *Game) [][2]int {
	at := make(map[string][]int)
	var order []string
	for i, c := range g.Cards() {
		if _, ok := at[c.Symbol]; !ok {
			order = append(order, c.Symbol)
		}
		at[c.Symbol] = append(at[c.Symbol], i)
	}
	var out [][2]int
	for _, s := range order {
		out = append(out, [2]int{at[s][0], at[s][1]})
	}
	return out
}

func fireFor(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Fire(TimerClock)
	}
}

func TestPerfectGameScores94(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)

	for _, p := range pairsOf(g) {
		g.Flip(p[0])
		g.Flip(p[1])
		fireFor(g, 6) // match delay 600ms
	}

	if len(done) != 1 || done[0] != 94 {
		t.Fatalf("completions = %v, want [94]", done)
	}
	if g.State().Round != 6 {
		t.Errorf("moves = %d, want 6", g.State().Round)
	}
	for _, c := range g.Cards() {
		if !c.Matched || !c.Revealed {
			t.Errorf("card %+v should stay revealed and matched", c)
		}
	}
}

func TestMatchResolvesAfterDelay(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)
	p := pairsOf(g)[0]

	g.Flip(p[0])
	g.Flip(p[1])
	fireFor(g, 5)
	if g.Cards()[p[0]].Matched {
		t.Fatal("pair matched before 600ms")
	}
	fireFor(g, 1)
	if !g.Cards()[p[0]].Matched || !g.Cards()[p[1]].Matched {
		t.Error("pair should be matched after 600ms")
	}
	if len(cues) != 1 || cues[0] != core.CueMatch {
		t.Errorf("cues = %v, want [match]", cues)
	}
}

func TestMismatchFlipsBack(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)
	pairs := pairsOf(g)
	a, b := pairs[0][0], pairs[1][0]

	g.Flip(a)
	g.Flip(b)
	if g.State().Round != 1 {
		t.Errorf("moves = %d, want 1", g.State().Round)
	}

	// A third card cannot be turned while the pair is pending.
	g.Flip(pairs[2][0])
	if g.Cards()[pairs[2][0]].Revealed {
		t.Error("third card revealed while two are face up")
	}

	fireFor(g, 9)
	if !g.Cards()[a].Revealed {
		t.Fatal("mismatch hidden before 1s")
	}
	fireFor(g, 1)
	cards := g.Cards()
	if cards[a].Revealed || cards[b].Revealed || cards[a].Matched {
		t.Errorf("mismatched pair should be face down: %+v %+v", cards[a], cards[b])
	}
}

func TestFlipIgnoresFaceUpCards(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)

	g.Flip(0)
	g.Flip(0)
	if g.State().Round != 0 {
		t.Errorf("flipping the same card twice counted a move")
	}

	g.Flip(-1)
	g.Flip(100)
	if len(g.faceUp) != 1 {
		t.Errorf("faceUp = %v, want one card", g.faceUp)
	}
}

func TestScoreFloor(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)

	g.moves = 95
	if g.Score() != 10 {
		t.Errorf("score = %d, want floor 10", g.Score())
	}
	g.moves = 30
	if g.Score() != 70 {
		t.Errorf("score = %d, want 70", g.Score())
	}
}

func TestRestartDealsNewBoard(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)
	pairs := pairsOf(g)

	g.Flip(pairs[0][0])
	g.Flip(pairs[1][0])
	g.Handle(core.Press(core.ActionRestart))

	if g.State().Round != 0 {
		t.Errorf("moves = %d after restart, want 0", g.State().Round)
	}
	for _, c := range g.Cards() {
		if c.Revealed || c.Matched {
			t.Fatalf("restart left a card face up: %+v", c)
		}
	}
	if len(g.Cards()) != 12 {
		t.Errorf("restart dealt %d cards", len(g.Cards()))
	}

	// The pending reveal from the old board must not resolve on the new one.
	fireFor(g, 20)
	for _, c := range g.Cards() {
		if c.Revealed {
			t.Fatalf("stale reveal touched the new board")
		}
	}
}

func TestCursorNavigation(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)

	g.Handle(core.Press(core.ActionLeft))
	g.Handle(core.Press(core.ActionUp))
	if g.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", g.cursor)
	}

	g.Handle(core.Press(core.ActionRight))
	g.Handle(core.Press(core.ActionDown))
	if g.cursor != 5 {
		t.Errorf("cursor = %d, want 5", g.cursor)
	}

	for i := 0; i < 5; i++ {
		g.Handle(core.Press(core.ActionRight))
	}
	if g.cursor != 7 {
		t.Errorf("cursor = %d, want 7 (end of row)", g.cursor)
	}

	g.Handle(core.Press(core.ActionConfirm))
	if !g.Cards()[7].Revealed {
		t.Error("confirm should flip the card under the cursor")
	}
}

func TestClickFlipsCard(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)

	r := g.rects[3]
	g.Handle(core.InputEvent{Kind: core.InputClick, X: r.X + 2, Y: r.Y + 1})

	if !g.Cards()[3].Revealed || g.cursor != 3 {
		t.Error("click should flip card 3")
	}
}

func TestRender(t *testing.T) {
	var done []int
	var cues []core.Cue
	g := startMemory(&done, &cues)
	g.Flip(0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, g.Cards()[0].Symbol) {
		t.Errorf("revealed symbol %q not rendered", g.Cards()[0].Symbol)
	}
	if !strings.Contains(out, "Pairs: 0/6") {
		t.Error("pair counter not rendered")
	}
}
