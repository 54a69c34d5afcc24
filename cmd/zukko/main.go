// zukko is a children's arcade for the terminal: three mini-games and a
// buddy who hands out riddles, praise and fun facts.
//
// Usage:
//
//	zukko                    - Open the home menu
//	zukko play [activity]    - Open the menu, or jump straight into an activity
//	zukko list               - List available activities
//	zukko serve              - Start SSH server for remote play
//	zukko buddy <kind>       - Print one buddy reply (riddle, praise, fact)
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible sessions
//	--config <path>        - Custom YAML config
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-file <path>      - Log destination for local play
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zukko-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/zukko-arcade/internal/games/arithmetic"
	_ "github.com/vovakirdan/zukko-arcade/internal/games/catcher"
	_ "github.com/vovakirdan/zukko-arcade/internal/games/memory"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zukko",
	Short: "Zukko Arcade - mini-games and a wise owl in your terminal",
	Long: `Zukko Arcade is a terminal playground for kids: a memory game, a
math quiz, a fruit catching game, and a buddy who tells riddles.

Available commands:
  play     - Open the menu or start an activity directly
  list     - Show all available activities
  serve    - Start SSH server for remote play
  buddy    - Ask the buddy for one reply

Examples:
  zukko
  zukko play catching --difficulty easy
  zukko serve --ssh :2222
  zukko buddy riddle`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env file is fine; the environment may already carry the keys.
		_ = godotenv.Load()
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (local play logs nothing by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(buddyCmd)
}

// loadConfig reads the configuration and applies --difficulty.
func loadConfig() (config.Config, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.Config{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveSeed turns the --seed default of 0 into a clock-based seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newLogger builds the process logger. fallback is used when --log-file is
// not set; the returned closer releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "zukko",
		Level:           level,
	})
	return logger, closer, nil
}
