// Package config provides YAML-based activity configuration loading and
// difficulty management.
package config

import "time"

// Config is the full configuration for every activity.
type Config struct {
	Catcher    CatcherConfig    `yaml:"catcher"`
	Arithmetic ArithmeticConfig `yaml:"arithmetic"`
	Memory     MemoryConfig     `yaml:"memory"`
	Buddy      BuddyConfig      `yaml:"buddy"`
}

// CatcherConfig contains all configuration for the fruit catching game.
// Positions and speeds are percentages of the play field per frame step.
type CatcherConfig struct {
	Session    CatcherSession   `yaml:"session"`
	Player     CatcherPlayer    `yaml:"player"`
	Spawn      CatcherSpawn     `yaml:"spawn"`
	Catch      CatcherCatch     `yaml:"catch"`
	Fruits     []string         `yaml:"fruits"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatcherSession defines the session timer and scoring.
type CatcherSession struct {
	DurationSecs int           `yaml:"duration_secs"`
	Reward       int           `yaml:"reward"`
	Intro        time.Duration `yaml:"intro"` // how long the instructions overlay stays up
}

// CatcherPlayer defines the basket.
type CatcherPlayer struct {
	StartX       float64 `yaml:"start_x"`
	MinX         float64 `yaml:"min_x"`
	MaxX         float64 `yaml:"max_x"`
	KeySpeed     float64 `yaml:"key_speed"`
	KeyHoldSteps int     `yaml:"key_hold_steps"` // steps a repeated key stays held until the next repeat

	// How long a fresh key press stays held while the terminal waits to start
	// auto-repeating.
	KeyRepeatDelay time.Duration `yaml:"key_repeat_delay"`
}

// CatcherSpawn defines falling fruit creation.
type CatcherSpawn struct {
	Interval time.Duration `yaml:"interval"`
	Margin   float64       `yaml:"margin"`
	StartY   float64       `yaml:"start_y"`
	MinSpeed float64       `yaml:"min_speed"`
	MaxSpeed float64       `yaml:"max_speed"`
}

// CatcherCatch defines the catch band and removal bound.
type CatcherCatch struct {
	BandMin   float64 `yaml:"band_min"`
	BandMax   float64 `yaml:"band_max"`
	Tolerance float64 `yaml:"tolerance"`
	ExpireY   float64 `yaml:"expire_y"`
}

// ArithmeticConfig contains all configuration for the arithmetic quiz.
type ArithmeticConfig struct {
	Rounds           int           `yaml:"rounds"`
	Points           int           `yaml:"points"`
	MinOperand       int           `yaml:"min_operand"`
	MaxOperand       int           `yaml:"max_operand"`
	Operators        []string      `yaml:"operators"`
	DistractorOffset int           `yaml:"distractor_offset"`
	FeedbackDelay    time.Duration `yaml:"feedback_delay"`
}

// MemoryConfig contains all configuration for the memory matching game.
type MemoryConfig struct {
	Pairs         int           `yaml:"pairs"`
	Columns       int           `yaml:"columns"`
	BaseScore     int           `yaml:"base_score"`
	MinScore      int           `yaml:"min_score"`
	MatchDelay    time.Duration `yaml:"match_delay"`
	MismatchDelay time.Duration `yaml:"mismatch_delay"`
	Symbols       []string      `yaml:"symbols"`
}

// BuddyConfig contains the buddy persona, prompts and fallbacks.
type BuddyConfig struct {
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	Persona     string        `yaml:"persona"`
	Greeting    string        `yaml:"greeting"`
	Prompts     BuddyPrompts  `yaml:"prompts"`
	Fallbacks   BuddyFallback `yaml:"fallbacks"`
	Canned      BuddyCanned   `yaml:"canned"`
}

// BuddyPrompts are the request texts per kind. Praise may use {{.Score}}.
type BuddyPrompts struct {
	Riddle  string `yaml:"riddle"`
	Praise  string `yaml:"praise"`
	FunFact string `yaml:"fun_fact"`
}

// BuddyFallback are the texts shown when the generator gives nothing usable.
type BuddyFallback struct {
	Empty   string `yaml:"empty"`
	Failure string `yaml:"failure"`
}

// BuddyCanned are offline replies used when no API key is configured.
type BuddyCanned struct {
	Riddles  []string `yaml:"riddles"`
	Praise   []string `yaml:"praise"`
	FunFacts []string `yaml:"fun_facts"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or elapsed seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to the speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
