package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/platform/tui"
	"github.com/vovakirdan/cryptsteps/internal/registry"
)

const defaultMode = "cryptsteps"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: cryptsteps).

Controls:
  Arrows/WASD  - Move one cell (menu: navigate)
  Enter/Space  - Select menu item
  Esc          - Back to the menu / leave the game over screen
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 health, 4 skeletons
  normal - 3 health, 6 skeletons
  hard   - 2 health, 9 skeletons

Examples:
  cryptsteps play
  cryptsteps play cryptsteps_daily
  cryptsteps play --difficulty hard --seed 7
  cryptsteps play --config ./my-crypt.yaml --log-file crypt.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode := defaultMode
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'cryptsteps list' to see available modes", mode)
	}
	return playMode(cmd.Context(), mode)
}

// playMode runs one mode until the player quits.
func playMode(ctx context.Context, mode string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closer.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	s := openSession(ctx, settings, logger)
	defer s.shutdown()

	game, err := registry.Create(mode, s.deps)
	if err != nil {
		return err
	}

	logger.Info("starting", "mode", mode, "difficulty", settings.Difficulty, "seed", flagSeed)
	return tui.Run(game, runtimeConfig(), tui.Options{
		ReleaseAfter: settings.Input.ReleaseAfter(),
		RepeatDelay:  settings.Input.RepeatDelay(),
		Logger:       logger,
	})
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
