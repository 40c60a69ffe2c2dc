// asteroids is a minimal Asteroids game for the terminal or a desktop window.
//
// Usage:
//
//	asteroids play           - Play in the terminal (Bubble Tea frontend)
//	asteroids play -f window - Play in a desktop window
//	asteroids list           - List available frontends
//	asteroids config         - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible asteroid fields
//	--log-file <path>   - Append logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/platform/console"
	_ "github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	_ "github.com/vovakirdan/tui-asteroids/internal/platform/window"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
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
	Use:   "asteroids",
	Short: "Asteroids - steer, thrust and shoot in your terminal",
	Long: `Asteroids is a minimal take on the arcade classic. Fly a ship around a
wrapping world and shoot the drifting rocks.

Available commands:
  play     - Start a game
  list     - Show all available frontends
  config   - Print the effective configuration as YAML

Examples:
  asteroids play
  asteroids play --frontend console --difficulty hard
  asteroids play --frontend window --seed 42
  asteroids config --difficulty easy > ~/.asteroids/configs/asteroids.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
