package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration: the embedded defaults, overlaid by the first
// file found in customPath -> ~/.zukko/config.yaml -> ./configs/zukko.yaml.
// Keys missing from the overlay keep their default values.
func Load(customPath string) (Config, error) {
	cfg, err := embedded()
	if err != nil {
		cfg = Default()
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "zukko.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			continue
		}
		if overlay.Validate() == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// LoadWithPreset loads the configuration and applies a difficulty preset.
func LoadWithPreset(customPath string, preset DifficultyPreset) (Config, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		ApplyPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

func embedded() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zukko", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Catcher.Difficulty.Enabled = false
		return
	}
	cfg.Catcher.Difficulty.Enabled = true
	cfg.Catcher.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Catcher.Spawn.MaxSpeed = 4
		cfg.Catcher.Catch.Tolerance = 12
		cfg.Arithmetic.MaxOperand = 10
		cfg.Memory.Pairs = 4
	case DifficultyHard:
		cfg.Catcher.Spawn.MinSpeed = 3
		cfg.Catcher.Spawn.MaxSpeed = 6
		cfg.Catcher.Catch.Tolerance = 8
		cfg.Arithmetic.MaxOperand = 20
		cfg.Memory.Pairs = 8
	}
}

// Validate reports every setting that would break an activity.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	cc := c.Catcher
	check(cc.Session.DurationSecs > 0, "catcher.session.duration_secs must be positive")
	check(cc.Session.Reward >= 0, "catcher.session.reward must not be negative")
	check(cc.Player.MinX < cc.Player.MaxX, "catcher.player.min_x must be below max_x")
	check(cc.Player.MinX >= 5 && cc.Player.MaxX <= 95, "catcher.player bounds must lie within [5, 95]")
	check(cc.Player.KeyHoldSteps > 0, "catcher.player.key_hold_steps must be positive")
	check(cc.Player.KeyRepeatDelay >= 0, "catcher.player.key_repeat_delay must not be negative")
	check(cc.Player.KeySpeed > 0, "catcher.player.key_speed must be positive")
	check(cc.Spawn.Interval > 0, "catcher.spawn.interval must be positive")
	check(cc.Spawn.Margin >= 0 && cc.Spawn.Margin < 50, "catcher.spawn.margin must be in [0, 50)")
	check(cc.Spawn.MinSpeed > 0 && cc.Spawn.MinSpeed <= cc.Spawn.MaxSpeed, "catcher.spawn speeds must satisfy 0 < min_speed <= max_speed")
	check(cc.Catch.BandMin < cc.Catch.BandMax, "catcher.catch.band_min must be below band_max")
	check(cc.Catch.ExpireY >= cc.Catch.BandMax, "catcher.catch.expire_y must not be above band_max")
	check(len(cc.Fruits) > 0, "catcher.fruits must not be empty")

	ac := c.Arithmetic
	check(ac.Rounds > 0, "arithmetic.rounds must be positive")
	check(ac.MinOperand >= 0 && ac.MinOperand <= ac.MaxOperand, "arithmetic operands must satisfy 0 <= min_operand <= max_operand")
	check(ac.DistractorOffset >= 3, "arithmetic.distractor_offset must be at least 3")
	check(len(ac.Operators) > 0, "arithmetic.operators must not be empty")
	for _, op := range ac.Operators {
		check(op == "+" || op == "-", "arithmetic.operators: unsupported operator %q", op)
	}

	mc := c.Memory
	check(mc.Pairs > 0, "memory.pairs must be positive")
	check(mc.Pairs <= len(mc.Symbols), "memory.pairs (%d) exceeds the %d symbols available", mc.Pairs, len(mc.Symbols))
	seen := make(map[string]bool, len(mc.Symbols))
	for _, sym := range mc.Symbols {
		check(!seen[sym], "memory.symbols: duplicate symbol %q", sym)
		seen[sym] = true
	}
	check(mc.Columns > 0, "memory.columns must be positive")
	check(mc.MinScore >= 0 && mc.MinScore <= mc.BaseScore, "memory scores must satisfy 0 <= min_score <= base_score")

	check(c.Buddy.Timeout > 0, "buddy.timeout must be positive")

	return errors.Join(errs...)
}
