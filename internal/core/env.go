package core

import (
	"math/rand"
	"time"
)

// TimerID identifies one of an activity's periodic timing sources.
type TimerID int

// TimerSpec declares a periodic timing source. The platform fires it every
// Interval for as long as the activity stays mounted and unfinished.
type TimerSpec struct {
	ID       TimerID
	Interval time.Duration
}

// Env is everything an activity receives when it is mounted.
type Env struct {
	Config RuntimeConfig
	Rand   *rand.Rand

	// Complete reports the final score. Activities call it exactly once.
	Complete func(score int)

	// Cue is optional; nil means feedback events are dropped.
	Cue func(Cue)
}

// Emit sends a cue if a handler is installed.
func (e Env) Emit(c Cue) {
	if e.Cue != nil {
		e.Cue(c)
	}
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
