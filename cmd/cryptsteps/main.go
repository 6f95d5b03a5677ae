// cryptsteps is a turn-based dungeon crawl played in the terminal.
//
// Usage:
//
//	cryptsteps                - Pick a mode and play
//	cryptsteps play [mode]    - Play a mode directly (default: cryptsteps)
//	cryptsteps list           - List available modes
//	cryptsteps map            - Print a generated crypt for a seed
//	cryptsteps config         - Print the effective settings
//
// Global flags:
//
//	--fps <rate>          - Animation tick rate (default: 30)
//	--seed <value>        - RNG seed for reproducible crypts
//	--config <path>       - Settings file
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file while playing
//	--no-audio            - Disable sound and music
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/cryptsteps/internal/games/cryptsteps"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagNoAudio    bool
)

func main() {
	// A missing .env is normal; variables may be set directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cryptsteps",
	Short: "Crypt Steps - a turn-based crypt crawl in your terminal",
	Long: `Crypt Steps is a turn-based dungeon crawl. Every step you take gives
the patrolling skeletons one step of their own. Reach the exit before they
wear your health down.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker (default)
  list     - Show all modes
  map      - Print a generated crypt
  config   - Print the effective settings

Examples:
  cryptsteps
  cryptsteps play
  cryptsteps play cryptsteps_daily --difficulty hard
  cryptsteps map --seed 42`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Animation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play and menu discard logs otherwise)")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects and music")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(configCmd)
}
