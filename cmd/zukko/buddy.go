package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zukko-arcade/internal/buddy"
)

var flagScore int

var buddyCmd = &cobra.Command{
	Use:   "buddy <riddle|praise|fact>",
	Short: "Ask the buddy for one reply",
	Long: `Ask the buddy for a riddle, praise or a fun fact and print the reply.

Uses Gemini when GEMINI_API_KEY (or API_KEY) is set, in the environment or a
.env file, and the built-in offline replies otherwise.

Examples:
  zukko buddy riddle
  zukko buddy praise --score 40`,
	Args: cobra.ExactArgs(1),
	RunE: runBuddy,
}

func init() {
	buddyCmd.Flags().IntVar(&flagScore, "score", 0, "Score to praise")
}

func runBuddy(cmd *cobra.Command, args []string) error {
	kind, err := buddy.ParseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc := buddy.NewFromEnv(ctx, cfg.Buddy, resolveSeed(flagSeed), logger)
	reply := svc.Request(ctx, kind, flagScore)

	fmt.Println(reply.Text)
	if reply.Fallback {
		logger.Debug("offline reply", "backend", svc.Backend())
	}
	return nil
}
