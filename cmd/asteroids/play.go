package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/logging"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/platform/window"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagFrontend    string
	flagUnitsPerDot float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the selected frontend.

Controls (terminal):
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Shoot
  P                - Pause
  ?                - Toggle full help
  Ctrl+S           - Save a text screenshot to ~/.asteroids/screenshots
  Q/Ctrl+C         - Quit

Controls (window):
  Arrows/WASD held - Rotate and thrust
  Space            - Shoot
  P                - Pause
  Esc              - Quit

Difficulty options:
  easy   - Fewer, slower asteroids
  normal - Configured values
  hard   - More, faster asteroids

Examples:
  asteroids play
  asteroids play --frontend console
  asteroids play --difficulty hard --units-per-dot 3
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", tui.ID, "Frontend: tui, console or window")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Float64Var(&flagUnitsPerDot, "units-per-dot", 0, "World units per braille dot (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q (run 'asteroids list' to see available frontends)", flagFrontend)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Get terminal size; the frontends follow resizes from here on
	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:   flagLogFile,
		Stderr: flagFrontend == window.ID,
		Debug:  flagDebug,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	units := cfg.World.UnitsPerDot
	if flagUnitsPerDot > 0 {
		units = flagUnitsPerDot
	}

	opts := registry.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Rules:       asteroids.RulesFromConfig(cfg),
		UnitsPerDot: units,
		Logger:      logger,
	}

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", "frontend", frontend.ID(), "fps", flagFPS, "seed", flagSeed, "difficulty", flagDifficulty)
	return frontend.Run(ctx, opts)
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}
