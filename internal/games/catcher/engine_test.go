package catcher

import (
	"testing"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
)

func newTestEngine(seed int64) *Engine {
	return NewEngine(config.Default().Catcher, core.NewRand(seed))
}

func TestEngineStartsCentered(t *testing.T) {
	e := newTestEngine(1)
	if e.Catcher() != 50 {
		t.Errorf("catcher = %v, want 50", e.Catcher())
	}
	if e.Score() != 0 || e.TimeLeft() != 30 {
		t.Errorf("score=%d timeLeft=%d, want 0 and 30", e.Score(), e.TimeLeft())
	}
}

func TestCatcherStaysInBounds(t *testing.T) {
	e := newTestEngine(1)

	for i := 0; i < 100; i++ {
		e.Step(true, false)
		if e.Catcher() < 5 || e.Catcher() > 95 {
			t.Fatalf("step %d: catcher %v out of bounds", i, e.Catcher())
		}
	}
	if e.Catcher() != 5 {
		t.Errorf("after holding left, catcher = %v, want 5", e.Catcher())
	}

	for i := 0; i < 100; i++ {
		e.Step(false, true)
	}
	if e.Catcher() != 95 {
		t.Errorf("after holding right, catcher = %v, want 95", e.Catcher())
	}

	tests := []struct {
		pointer float64
		want    float64
	}{
		{-40, 5},
		{0, 5},
		{42, 42},
		{100, 95},
		{250, 95},
	}
	for _, tt := range tests {
		e.PointerAt(tt.pointer)
		e.Step(false, false)
		if e.Catcher() != tt.want {
			t.Errorf("pointer %v: catcher = %v, want %v", tt.pointer, e.Catcher(), tt.want)
		}
	}
}

func TestPointerOverridesKeysForOneStep(t *testing.T) {
	e := newTestEngine(1)

	e.PointerAt(30)
	e.Step(false, true)
	if e.Catcher() != 30 {
		t.Fatalf("catcher = %v, want 30 (keys ignored on pointer step)", e.Catcher())
	}

	e.Step(false, true)
	if e.Catcher() != 31.5 {
		t.Errorf("catcher = %v, want 31.5 (keys apply again)", e.Catcher())
	}
}

func TestCatchScoresAndRemoves(t *testing.T) {
	e := newTestEngine(1)
	e.fruits = []Fruit{{ID: 1, X: 50, Y: 84, Speed: 2}}

	res := e.Step(false, false)

	if res.Caught != 1 {
		t.Errorf("caught = %d, want 1", res.Caught)
	}
	if e.Score() != 5 {
		t.Errorf("score = %d, want 5", e.Score())
	}
	if len(e.Fruits()) != 0 {
		t.Errorf("fruit still live after catch: %+v", e.Fruits())
	}
}

func TestCatchUsesCatcherResolvedThisStep(t *testing.T) {
	e := newTestEngine(1)
	e.fruits = []Fruit{{ID: 1, X: 20, Y: 84, Speed: 2}}

	// The catcher starts at 50, far from the fruit; the pointer moves it
	// under the fruit in the same step.
	e.PointerAt(20)
	res := e.Step(false, false)

	if res.Caught != 1 {
		t.Errorf("caught = %d, want 1", res.Caught)
	}
}

func TestCatchBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		fruit  Fruit
		caught bool
	}{
		{"inside band", Fruit{X: 50, Y: 88, Speed: 2}, true},
		{"band min is exclusive", Fruit{X: 50, Y: 83, Speed: 2}, false},
		{"band max is exclusive", Fruit{X: 50, Y: 93, Speed: 2}, false},
		{"tolerance is exclusive", Fruit{X: 60, Y: 88, Speed: 2}, false},
		{"just inside tolerance", Fruit{X: 59, Y: 88, Speed: 2}, true},
		{"left side", Fruit{X: 41, Y: 88, Speed: 2}, true},
		{"too far left", Fruit{X: 39, Y: 88, Speed: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(1)
			e.fruits = []Fruit{tt.fruit}
			res := e.Step(false, false)
			if (res.Caught == 1) != tt.caught {
				t.Errorf("caught = %d, want caught=%v", res.Caught, tt.caught)
			}
		})
	}
}

func TestMultipleCatchesInOneStep(t *testing.T) {
	e := newTestEngine(1)
	e.fruits = []Fruit{
		{ID: 1, X: 45, Y: 86, Speed: 2},
		{ID: 2, X: 50, Y: 88, Speed: 3},
		{ID: 3, X: 55, Y: 84, Speed: 4},
	}

	res := e.Step(false, false)

	if res.Caught != 3 {
		t.Errorf("caught = %d, want 3", res.Caught)
	}
	if e.Score() != 15 {
		t.Errorf("score = %d, want 15", e.Score())
	}
}

func TestExpiredFruitIsRemovedWithoutScore(t *testing.T) {
	e := newTestEngine(1)
	e.fruits = []Fruit{
		{ID: 1, X: 10, Y: 104, Speed: 2},
		{ID: 2, X: 50, Y: 94, Speed: 20}, // jumps past the band
		{ID: 3, X: 10, Y: 50, Speed: 2},
	}

	res := e.Step(false, false)

	if res.Expired != 2 || res.Caught != 0 {
		t.Errorf("expired=%d caught=%d, want 2 and 0", res.Expired, res.Caught)
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
	fruits := e.Fruits()
	if len(fruits) != 1 || fruits[0].ID != 3 {
		t.Errorf("live set = %+v, want only fruit 3", fruits)
	}
}

func TestEveryFruitLeavesAtMostOnce(t *testing.T) {
	e := newTestEngine(7)
	seen := make(map[int]bool)
	removed := 0

	for step := 0; step < 3000; step++ {
		if step%48 == 0 {
			e.Spawn()
		}
		before := e.Fruits()
		e.PointerAt(float64(step % 100))
		res := e.Step(false, false)

		after := make(map[int]bool)
		for _, f := range e.Fruits() {
			after[f.ID] = true
		}
		gone := 0
		for _, f := range before {
			if !after[f.ID] {
				if seen[f.ID] {
					t.Fatalf("fruit %d removed twice", f.ID)
				}
				seen[f.ID] = true
				gone++
			}
		}
		if gone != res.Caught+res.Expired {
			t.Fatalf("step %d: %d fruit left but result says %d", step, gone, res.Caught+res.Expired)
		}
		removed += gone
	}

	if removed == 0 {
		t.Error("expected some fruit to leave the field")
	}
}

func TestSpawnRanges(t *testing.T) {
	e := newTestEngine(99)
	ids := make(map[int]bool)

	for i := 0; i < 500; i++ {
		e.Spawn()
	}
	for _, f := range e.Fruits() {
		if f.X < 5 || f.X >= 95 {
			t.Errorf("fruit %d x=%v outside [5, 95)", f.ID, f.X)
		}
		if f.Y != -10 {
			t.Errorf("fruit %d y=%v, want -10", f.ID, f.Y)
		}
		if f.Speed < 2 || f.Speed >= 5 {
			t.Errorf("fruit %d speed=%v outside [2, 5)", f.ID, f.Speed)
		}
		if f.Kind == "" {
			t.Errorf("fruit %d has no kind", f.ID)
		}
		if ids[f.ID] {
			t.Errorf("duplicate fruit id %d", f.ID)
		}
		ids[f.ID] = true
	}
}

func TestSpawnSpeedScalesWithDifficulty(t *testing.T) {
	cfg := config.Default().Catcher
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 1
	cfg.Difficulty.Scaling.SpeedMultiplier = 1

	e := NewEngine(cfg, core.NewRand(3))
	for i := 0; i < 100; i++ {
		e.Spawn()
	}
	for _, f := range e.Fruits() {
		if f.Speed < 4 || f.Speed >= 10 {
			t.Errorf("speed %v outside doubled range [4, 10)", f.Speed)
		}
	}
}

func TestCountdownFinishesOnce(t *testing.T) {
	e := newTestEngine(1)

	fired := 0
	for i := 0; i < 40; i++ {
		if e.Countdown() {
			fired++
			if i != 29 {
				t.Errorf("timer ran out on call %d, want 29", i)
			}
		}
	}
	if fired != 1 {
		t.Errorf("countdown reported the end %d times, want 1", fired)
	}
	if !e.Finished() || e.TimeLeft() != 0 {
		t.Errorf("finished=%v timeLeft=%d", e.Finished(), e.TimeLeft())
	}
}

func TestFinishedEngineIsFrozen(t *testing.T) {
	e := newTestEngine(1)
	e.fruits = []Fruit{{ID: 1, X: 50, Y: 84, Speed: 2}}
	e.finished = true

	e.Spawn()
	res := e.Step(true, false)

	if res.Caught != 0 || e.Score() != 0 {
		t.Error("finished engine should not score")
	}
	if len(e.Fruits()) != 1 || e.Fruits()[0].Y != 84 {
		t.Errorf("finished engine changed the live set: %+v", e.Fruits())
	}
	if e.Catcher() != 50 {
		t.Errorf("finished engine moved the catcher to %v", e.Catcher())
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() (int, int) {
		e := newTestEngine(12345)
		for step := 0; step < 1800; step++ {
			if step%48 == 0 {
				e.Spawn()
			}
			e.Step(step%120 < 60, step%120 >= 60)
		}
		return e.Score(), len(e.Fruits())
	}

	s1, n1 := run()
	s2, n2 := run()
	if s1 != s2 || n1 != n2 {
		t.Errorf("runs differ: (%d, %d) vs (%d, %d)", s1, n1, s2, n2)
	}
}
