package core

// RuntimeConfig contains configuration passed to activities when they are mounted.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame steps per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible state of a mounted activity.
type GameState struct {
	Score    int  // Current score, never negative
	Finished bool // Whether the completion callback has fired
	TimeLeft int  // Seconds remaining for timed activities, 0 otherwise
	Round    int  // Current round or move counter, activity specific
}

// Cue is a short feedback event an activity emits for sound or visual effects.
type Cue int

const (
	CueNone Cue = iota
	CueCatch
	CueCorrect
	CueWrong
	CueMatch
	CueFinish
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueMatch:
		return "match"
	case CueFinish:
		return "finish"
	default:
		return "none"
	}
}
