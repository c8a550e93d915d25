package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hero-dash/internal/sim"
)

var (
	flagTicks     int
	flagDT        float64
	flagJumpEvery int
	flagHold      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session with scripted input",
	Long: `Start a session through the start button and run it without a
terminal UI, feeding the same input every tick. Stops early if the hero
dies. Logs go to stderr; use --debug to see spawns and pruning.

Examples:
  herodash simulate --ticks 600
  herodash simulate --ticks 5000 --jump-every 25 --hold right --seed 7
  herodash simulate --dt 0.0333 --config ./slow.yaml --debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 0.0167, "Time-units per tick")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump every N ticks (0 = never)")
	simulateCmd.Flags().StringVar(&flagHold, "hold", "none", "Direction held throughout: left, right or none")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hold, err := sim.ParseHold(flagHold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed()
	logger := newLogger(os.Stderr, "herodash-sim")

	rep, err := sim.Run(cfg, sim.Options{
		Ticks:     flagTicks,
		DT:        flagDT,
		JumpEvery: flagJumpEvery,
		Hold:      hold,
		Seed:      seed,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Ticks:      %d\n", rep.Ticks)
	fmt.Printf("State:      %s\n", rep.State)
	fmt.Printf("Hero:       (%.1f, %.1f)\n", rep.Hero.X, rep.Hero.Y)
	fmt.Printf("Jumps:      %d (chain %d)\n", rep.Jumps, rep.JumpCount)
	fmt.Printf("Enemies:    %d\n", rep.Enemies)
	fmt.Printf("Platforms:  %d\n", rep.Platforms)
	if rep.DeathTick > 0 {
		fmt.Printf("Died:       tick %d (%s)\n", rep.DeathTick, rep.Cause)
	}
}
