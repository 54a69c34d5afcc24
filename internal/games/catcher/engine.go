package catcher

import (
	"math/rand"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
)

// Fruit is one falling object. Positions and speed are percentages of the
// play field; Y starts above the field and grows without bound.
type Fruit struct {
	ID    int
	X, Y  float64
	Kind  string
	Speed float64
}

// StepResult reports what happened to the live set during one step.
type StepResult struct {
	Caught  int
	Expired int
}

// Engine holds the simulation state of one catching session.
// It knows nothing about cells or terminals; everything is in percent.
type Engine struct {
	cfg  config.CatcherConfig
	diff *config.DifficultyManager
	rng  *rand.Rand

	catcher float64
	fruits  []Fruit
	nextID  int

	// Pointer sample received since the last step.
	pointer    float64
	hasPointer bool

	score    int
	timeLeft int
	elapsed  int
	finished bool
}

// NewEngine creates an engine with the catcher centered and the full timer.
func NewEngine(cfg config.CatcherConfig, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:      cfg,
		diff:     config.NewDifficultyManager(cfg.Difficulty),
		rng:      rng,
		catcher:  core.ClampF(cfg.Player.StartX, cfg.Player.MinX, cfg.Player.MaxX),
		timeLeft: cfg.Session.DurationSecs,
	}
}

// PointerAt records a pointer sample. The latest sample wins and is applied
// at the start of the next step.
func (e *Engine) PointerAt(pct float64) {
	e.pointer = pct
	e.hasPointer = true
}

// Step advances the simulation by one frame.
// left and right are the held states of the movement keys for this step.
func (e *Engine) Step(left, right bool) StepResult {
	var res StepResult
	if e.finished {
		return res
	}

	p := e.cfg.Player
	if e.hasPointer {
		e.catcher = core.ClampF(e.pointer, p.MinX, p.MaxX)
		e.hasPointer = false
	} else {
		if left {
			e.catcher = core.ClampF(e.catcher-p.KeySpeed, p.MinX, p.MaxX)
		}
		if right {
			e.catcher = core.ClampF(e.catcher+p.KeySpeed, p.MinX, p.MaxX)
		}
	}

	c := e.cfg.Catch
	next := make([]Fruit, 0, len(e.fruits))
	for _, f := range e.fruits {
		f.Y += f.Speed
		switch {
		case f.Y > c.BandMin && f.Y < c.BandMax && core.AbsF(f.X-e.catcher) < c.Tolerance:
			res.Caught++
			e.score += e.cfg.Session.Reward
		case f.Y >= c.ExpireY:
			res.Expired++
		default:
			next = append(next, f)
		}
	}
	e.fruits = next

	return res
}

// Spawn adds one fruit at the top of the field.
func (e *Engine) Spawn() {
	if e.finished {
		return
	}

	s := e.cfg.Spawn
	x := s.Margin + e.rng.Float64()*(100-2*s.Margin)
	speed := s.MinSpeed + e.rng.Float64()*(s.MaxSpeed-s.MinSpeed)
	speed *= e.diff.SpeedFactor(e.score, e.elapsed)

	kind := ""
	if len(e.cfg.Fruits) > 0 {
		kind = e.cfg.Fruits[e.rng.Intn(len(e.cfg.Fruits))]
	}

	e.nextID++
	e.fruits = append(e.fruits, Fruit{
		ID:    e.nextID,
		X:     x,
		Y:     s.StartY,
		Kind:  kind,
		Speed: speed,
	})
}

// Countdown takes one second off the timer. It returns true exactly once,
// on the call that runs the timer out.
func (e *Engine) Countdown() bool {
	if e.finished {
		return false
	}
	e.elapsed++
	e.timeLeft--
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.finished = true
		return true
	}
	return false
}

// Catcher returns the catcher position in percent.
func (e *Engine) Catcher() float64 { return e.catcher }

// Fruits returns a copy of the live set.
func (e *Engine) Fruits() []Fruit {
	out := make([]Fruit, len(e.fruits))
	copy(out, e.fruits)
	return out
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// TimeLeft returns the remaining seconds.
func (e *Engine) TimeLeft() int { return e.timeLeft }

// Elapsed returns the whole seconds played so far.
func (e *Engine) Elapsed() int { return e.elapsed }

// Finished reports whether the timer has run out.
func (e *Engine) Finished() bool { return e.finished }
