// herodash is a side-scrolling platformer for the terminal: run, multi-jump
// between drifting platforms and dodge the enemies.
//
// Usage:
//
//	herodash play            - Play in the terminal (default)
//	herodash simulate        - Run a headless session with scripted input
//	herodash config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML config
//	--mute              - Start with music and sounds off
//	--log-file <path>   - Write logs to a file
//	--debug             - Log spawns and pruning
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hero-dash/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "herodash",
	Short: "Hero Dash - a terminal platformer",
	Long: `Hero Dash is a side-scrolling platformer played in your terminal.
Walk with the arrow keys, jump up to four times in a row and stay clear
of the enemies and the edges of the drifting platforms.

Available commands:
  play      - Play the game (default)
  simulate  - Run a headless session with scripted input
  config    - Print the effective configuration

Examples:
  herodash
  herodash play --seed 42 --mute
  herodash simulate --ticks 3000 --jump-every 25 --hold right
  herodash config > my-config.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with music and sounds off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// resolveSeed returns the --seed value, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds a logger writing to w, honouring --debug.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger opens --log-file for appending. With no file it discards.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard, prefix), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, prefix), func() { _ = f.Close() }, nil
}
