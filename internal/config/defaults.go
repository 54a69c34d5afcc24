package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/zukko.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Catcher: CatcherConfig{
			Session: CatcherSession{DurationSecs: 30, Reward: 5, Intro: 5 * time.Second},
			Player: CatcherPlayer{
				StartX:       50,
				MinX:         5,
				MaxX:         95,
				KeySpeed:     1.5,
				KeyHoldSteps: 9,

				KeyRepeatDelay: 500 * time.Millisecond,
			},
			Spawn: CatcherSpawn{
				Interval: 800 * time.Millisecond,
				Margin:   5,
				StartY:   -10,
				MinSpeed: 2,
				MaxSpeed: 5,
			},
			Catch:  CatcherCatch{BandMin: 85, BandMax: 95, Tolerance: 10, ExpireY: 105},
			Fruits: []string{"apple", "banana", "cherry", "strawberry", "orange", "grape"},
			Difficulty: DifficultyConfig{
				Progression: ProgressionConfig{Type: "time", MaxAt: 30},
				Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
			},
		},
		Arithmetic: ArithmeticConfig{
			Rounds:           5,
			Points:           10,
			MinOperand:       1,
			MaxOperand:       12,
			Operators:        []string{"+", "-"},
			DistractorOffset: 5,
			FeedbackDelay:    1200 * time.Millisecond,
		},
		Memory: MemoryConfig{
			Pairs:         6,
			Columns:       4,
			BaseScore:     100,
			MinScore:      10,
			MatchDelay:    600 * time.Millisecond,
			MismatchDelay: time.Second,
			Symbols: []string{
				"LION", "GIRAFFE", "ELEPHANT", "MONKEY", "TIGER", "ZEBRA",
				"PANDA", "KOALA", "FOX", "FROG", "OCTOPUS", "TURTLE",
			},
		},
		Buddy: BuddyConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.8,
			Timeout:     15 * time.Second,
			Persona:     "You are Wise Owl, the closest friend of young children. Keep answers short, cheerful and kind.",
			Greeting:    "Hello, little friend! I'm Wise Owl. What shall we learn today?",
			Prompts: BuddyPrompts{
				Riddle:  "Write one very simple, fun riddle for children and give its answer in parentheses.",
				Praise:  "Cheerfully praise a child for scoring {{.Score}} points in a game and encourage them to score even more next time.",
				FunFact: "Tell children one amazing and fun fact about animals or space.",
			},
			Fallbacks: BuddyFallback{
				Empty:   "Sorry, little friend, I'm a bit tired. Let's talk again later!",
				Failure: "Our internet is a little slow right now, but you are still a clever star!",
			},
			Canned: BuddyCanned{
				Riddles:  []string{"What has keys but can't open locks? (A piano!)"},
				Praise:   []string{"Wow, {{.Score}} points! You are a real superstar!"},
				FunFacts: []string{"An octopus has three hearts and blue blood!"},
			},
		},
	}
}
