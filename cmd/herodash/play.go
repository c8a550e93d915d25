package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/speaker"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hero-dash/internal/audio"
	"github.com/vovakirdan/hero-dash/internal/config"
	"github.com/vovakirdan/hero-dash/internal/core"
	"github.com/vovakirdan/hero-dash/internal/game"
	"github.com/vovakirdan/hero-dash/internal/platform/tui"
)

var flagHoldWindow time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Hero Dash",
	Long: `Start the game at the main menu.

Controls:
  Left/Right, A/D   - Walk
  Up/W/Space        - Jump (up to 4 times before landing)
  Enter/Space       - Start game (menu)
  M                 - Toggle music and sounds (menu)
  Mouse click       - Press menu buttons
  Q/Ctrl+C          - Quit

Terminals only report key presses, so a direction stays held for
--hold-window after each press; key repeat keeps it going.

Examples:
  herodash play
  herodash play --seed 42
  herodash play --config ./my-config.yaml --log-file herodash.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagHoldWindow, "hold-window", core.DefaultConfig().HoldWindow, "How long a direction key counts as held")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs the interactive session. It returns instead of exiting so
// the audio device and the log file are always released.
func playGame() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger("herodash")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       resolveSeed(),
		HoldWindow: flagHoldWindow,
	}
	if rc.TickRate <= 0 {
		logger.Error("invalid tick rate", "fps", rc.TickRate)
		return fmt.Errorf("--fps must be positive, got %d", rc.TickRate)
	}
	logger.Info("starting", "seed", rc.Seed, "fps", rc.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	sound, stopAudio := openAudio(cfg.Audio, logger)
	defer stopAudio()

	machine := game.NewMachine(cfg, rand.New(rand.NewSource(rc.Seed)), sound, logger)
	if err := tui.Run(machine, rc, logger); err != nil {
		logger.Error("game loop failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openAudio starts the speaker with a synthesized engine. Without a usable
// audio device the game runs silent.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (game.Audio, func()) {
	engine := audio.NewEngine(cfg, logger)
	rate := engine.SampleRate()

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
		return game.NopAudio{}, func() {}
	}
	speaker.Play(engine)
	return engine, speaker.Close
}
